package services

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/models"
	"github.com/devquest/devquest/internal/scorer"
)

const defaultMaxConcurrency = 4

// contributionScorer defines the methods needed by ContributionService from the scorer.
type contributionScorer interface {
	ScoreContribution(ctx context.Context, prURL string) (models.ScoreResult, error)
	GetPRDetails(prURL string) (models.PRDetails, error)
}

// scoreCache defines the methods needed by ContributionService from the result cache.
type scoreCache interface {
	GenerateHash(content string) string
	Get(hash string) (json.RawMessage, bool, error)
	Set(hash string, response interface{}) error
}

// prVCSClient defines the methods needed by ContributionService from a VCS provider.
type prVCSClient interface {
	GetPullRequest(ctx context.Context, ref models.PullRequestRef) (models.PRDetails, error)
}

// contributionReviewer defines the methods needed by ContributionService from an AI provider.
type contributionReviewer interface {
	Review(ctx context.Context, details models.PRDetails, result models.ScoreResult) (string, error)
}

type ContributionService struct {
	scorer    contributionScorer
	cache     scoreCache
	vcsClient prVCSClient
	reviewer  contributionReviewer
	config    *config.Config
}

type ContributionOption func(*ContributionService)

func WithScorer(s contributionScorer) ContributionOption {
	return func(cs *ContributionService) {
		cs.scorer = s
	}
}

func WithCache(c scoreCache) ContributionOption {
	return func(cs *ContributionService) {
		cs.cache = c
	}
}

func WithVCSClient(vcs prVCSClient) ContributionOption {
	return func(cs *ContributionService) {
		cs.vcsClient = vcs
	}
}

func WithReviewer(r contributionReviewer) ContributionOption {
	return func(cs *ContributionService) {
		cs.reviewer = r
	}
}

func WithConfig(cfg *config.Config) ContributionOption {
	return func(cs *ContributionService) {
		cs.config = cfg
	}
}

// NewContributionService builds the service. Without WithScorer it uses a
// scorer with the default delay.
func NewContributionService(opts ...ContributionOption) *ContributionService {
	s := &ContributionService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.scorer == nil {
		s.scorer = scorer.New()
	}
	return s
}

// Score scores one pull request, serving repeated requests from the cache.
func (s *ContributionService) Score(ctx context.Context, prURL string) (models.ScoredContribution, error) {
	log := logger.FromContext(ctx)
	item := models.ScoredContribution{URL: prURL}

	ref, err := scorer.ParsePRURL(prURL)
	if err != nil {
		return item, err
	}

	key := s.cacheKey(ref)
	if cached, ok := s.lookup(ctx, key); ok {
		log.Debug("score served from cache", "pr", ref.String())
		item.Result = &cached
		item.Cached = true
	} else {
		start := time.Now()
		result, err := s.scorer.ScoreContribution(ctx, prURL)
		if err != nil {
			return item, err
		}
		log.Info("contribution scored",
			"pr", ref.String(),
			"score", result.Score,
			"duration_ms", time.Since(start).Milliseconds())
		item.Result = &result
		s.store(ctx, key, result)
	}

	if s.reviewer != nil {
		item.ReviewerNotes = s.review(ctx, prURL, *item.Result)
	}

	return item, nil
}

// ScoreBatch scores every URL with bounded parallelism. Results keep the
// input order. A failed URL is recorded on its item and does not stop the
// others; only a cancelled context aborts the batch.
func (s *ContributionService) ScoreBatch(ctx context.Context, urls []string) ([]models.ScoredContribution, error) {
	if len(urls) == 0 {
		return nil, domainErrors.ErrNoPRURLs
	}

	results := make([]models.ScoredContribution, len(urls))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency())

	for i, u := range urls {
		g.Go(func() error {
			item, err := s.Score(ctx, u)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn(ctx, "contribution scoring failed", "pr_url", u, "error", err)
				item = models.ScoredContribution{URL: u, Err: err, Error: err.Error()}
			}
			results[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Validate reports whether the URL is a well-formed GitHub pull request URL.
func (s *ContributionService) Validate(prURL string) bool {
	return scorer.ValidatePR(prURL)
}

// Details returns the pull request metadata. With live set, title, state,
// author and creation time are overlaid from GitHub.
func (s *ContributionService) Details(ctx context.Context, prURL string, live bool) (models.PRDetails, error) {
	details, err := s.scorer.GetPRDetails(prURL)
	if err != nil {
		return models.PRDetails{}, err
	}
	if !live {
		return details, nil
	}
	if s.vcsClient == nil {
		return models.PRDetails{}, domainErrors.ErrVCSNotConfigured
	}

	ref := models.PullRequestRef{Owner: details.Owner, Repo: details.Repo, Number: details.PRNumber}
	remote, err := s.vcsClient.GetPullRequest(ctx, ref)
	if err != nil {
		return models.PRDetails{}, err
	}

	details.Title = remote.Title
	details.State = remote.State
	details.Author = remote.Author
	if !remote.CreatedAt.IsZero() {
		details.CreatedAt = remote.CreatedAt
	}
	return details, nil
}

func (s *ContributionService) review(ctx context.Context, prURL string, result models.ScoreResult) string {
	details, err := s.scorer.GetPRDetails(prURL)
	if err != nil {
		return ""
	}
	notes, err := s.reviewer.Review(ctx, details, result)
	if err != nil {
		logger.Warn(ctx, "reviewer notes unavailable", "pr_url", prURL, "error", err)
		return ""
	}
	return notes
}

// cacheKey includes the language because feedback text is translated.
func (s *ContributionService) cacheKey(ref models.PullRequestRef) string {
	if s.cache == nil {
		return ""
	}
	lang := "en"
	if s.config != nil && s.config.Language != "" {
		lang = s.config.Language
	}
	return s.cache.GenerateHash(ref.String() + "|" + lang)
}

func (s *ContributionService) lookup(ctx context.Context, key string) (models.ScoreResult, bool) {
	if s.cache == nil {
		return models.ScoreResult{}, false
	}
	raw, ok, err := s.cache.Get(key)
	if err != nil {
		logger.Warn(ctx, "cache read failed", "error", err)
		return models.ScoreResult{}, false
	}
	if !ok {
		return models.ScoreResult{}, false
	}
	var result models.ScoreResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.Warn(ctx, "cached score is unreadable", "error", err)
		return models.ScoreResult{}, false
	}
	return result, true
}

func (s *ContributionService) store(ctx context.Context, key string, result models.ScoreResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(key, result); err != nil {
		logger.Warn(ctx, "cache write failed", "error", err)
	}
}

func (s *ContributionService) maxConcurrency() int {
	if s.config != nil && s.config.MaxConcurrency > 0 {
		return s.config.MaxConcurrency
	}
	return defaultMaxConcurrency
}
