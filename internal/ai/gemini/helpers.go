package gemini

import (
	"strings"

	"google.golang.org/genai"

	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/regex"
)

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Thought {
				continue
			}
			formattedContent.WriteString(part.Text)
		}
	}
	return formattedContent.String()
}

// cleanResponse trims the model output and unwraps a surrounding markdown fence.
func cleanResponse(text string) string {
	text = strings.TrimSpace(text)
	if m := regex.MarkdownFence.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	return text
}

func classifyError(err error) error {
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "quota") ||
		strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "resource exhausted"):
		return domainErrors.ErrGeminiQuotaExceeded.WithError(err)
	case isKeyError(errMsg):
		return domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
	default:
		return domainErrors.ErrAIGeneration.WithError(err)
	}
}

func isKeyError(errMsg string) bool {
	return strings.Contains(errMsg, "invalid") ||
		strings.Contains(errMsg, "unauthorized") ||
		strings.Contains(errMsg, "api key") ||
		strings.Contains(errMsg, "authentication")
}

func float32Ptr(f float32) *float32 {
	return &f
}
