package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/devquest/devquest/internal/ai"
	"github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/models"
)

var _ ai.ContributionReviewer = (*GeminiReviewer)(nil)

// GenerateFunc performs a single model call and returns its text.
type GenerateFunc func(ctx context.Context, model string, prompt string) (string, error)

type GeminiReviewer struct {
	client     *genai.Client
	model      string
	language   string
	generateFn GenerateFunc
}

func NewGeminiReviewer(ctx context.Context, cfg *config.Config) (*GeminiReviewer, error) {
	apiKey := cfg.EffectiveGeminiAPIKey()
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		if isKeyError(strings.ToLower(err.Error())) {
			return nil, domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error creating AI client", err)
	}

	model := cfg.GeminiModel
	if model == "" {
		model = config.DefaultGeminiModel
	}

	reviewer := &GeminiReviewer{
		client:   client,
		model:    model,
		language: cfg.Language,
	}
	reviewer.generateFn = reviewer.defaultGenerate
	return reviewer, nil
}

// NewGeminiReviewerWithGenerator builds a reviewer around an arbitrary
// generate call. Used by tests and offline tooling.
func NewGeminiReviewerWithGenerator(model, language string, fn GenerateFunc) *GeminiReviewer {
	return &GeminiReviewer{
		model:      model,
		language:   language,
		generateFn: fn,
	}
}

func (gr *GeminiReviewer) defaultGenerate(ctx context.Context, model string, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	genConfig := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: 1024,
	}

	resp, err := gr.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
	if err != nil {
		log.Error("gemini API call failed",
			"error", err,
			"model", model)
		return "", classifyError(err)
	}

	return formatResponse(resp), nil
}

func (gr *GeminiReviewer) Review(ctx context.Context, details models.PRDetails, result models.ScoreResult) (string, error) {
	log := logger.FromContext(ctx)

	prompt, err := gr.buildPrompt(details, result)
	if err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "error rendering review prompt", err)
	}

	log.Debug("calling gemini API for reviewer notes",
		"model", gr.model,
		"prompt_length", len(prompt))

	text, err := gr.generateFn(ctx, gr.model, prompt)
	if err != nil {
		log.Error("failed to generate reviewer notes",
			"error", err)
		return "", err
	}

	notes := cleanResponse(text)
	if notes == "" {
		return "", domainErrors.ErrEmptyAIOutput.
			WithContext("operation", "review contribution")
	}

	log.Info("reviewer notes generated via gemini",
		"pr", details.URL,
		"length", len(notes))

	return notes, nil
}

func (gr *GeminiReviewer) buildPrompt(details models.PRDetails, result models.ScoreResult) (string, error) {
	ref := models.PullRequestRef{Owner: details.Owner, Repo: details.Repo, Number: details.PRNumber}
	b := result.Breakdown
	data := ai.PromptData{
		PullRequest:   ref.String(),
		Title:         details.Title,
		Author:        details.Author,
		Score:         result.Score,
		CodeQuality:   b.CodeQuality,
		TestCoverage:  b.TestCoverage,
		Documentation: b.Documentation,
		PRDescription: b.PRDescription,
		CodeStyle:     b.CodeStyle,
		Impact:        b.Impact,
		Feedback:      result.Feedback,
	}
	return ai.RenderPrompt("reviewPrompt", ai.GetReviewPromptTemplate(gr.language), data)
}
