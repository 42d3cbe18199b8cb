package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/models"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseFormat normalises a --format value. Empty means text.
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", domainErrors.ErrUnsupportedFormat.
			WithContext("format", format).
			WithSuggestion("Use one of: text, json, yaml")
	}
}

// RenderScores writes batch results in the requested format.
func RenderScores(w io.Writer, items []models.ScoredContribution, format string, t *i18n.Translations) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, items)
	case FormatYAML:
		return writeYAML(w, items)
	}

	for i, item := range items {
		if i > 0 {
			_, _ = fmt.Fprintln(w, Dim.Sprint(strings.Repeat("─", 40)))
		}
		renderScoreText(w, item, t)
	}
	return nil
}

// RenderDetails writes pull request details in the requested format.
func RenderDetails(w io.Writer, details models.PRDetails, format string, t *i18n.Translations) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, details)
	case FormatYAML:
		return writeYAML(w, details)
	}

	ref := models.PullRequestRef{Owner: details.Owner, Repo: details.Repo, Number: details.PRNumber}
	_, _ = fmt.Fprintf(w, "%s %s\n", QuestEmoji, Accent.Sprint(ref.String()))
	PrintKeyValue(w, t.GetMessage("details.url", 0, nil), details.URL)
	PrintKeyValue(w, t.GetMessage("details.title", 0, nil), details.Title)
	PrintKeyValue(w, t.GetMessage("details.state", 0, nil), details.State)
	PrintKeyValue(w, t.GetMessage("details.author", 0, nil), details.Author)
	PrintKeyValue(w, t.GetMessage("details.created_at", 0, nil), details.CreatedAt.Format(time.RFC3339))
	return nil
}

func renderScoreText(w io.Writer, item models.ScoredContribution, t *i18n.Translations) {
	if item.Result == nil {
		PrintError(w, fmt.Sprintf("%s %s", item.URL, t.GetMessage("score.failed", 0, nil)))
		if item.Error != "" {
			_, _ = Dim.Fprintf(w, "   %s\n", item.Error)
		}
		return
	}

	header := fmt.Sprintf("%s: %s",
		t.GetMessage("score.label", 0, nil),
		scoreColor(item.Result.Score).Sprintf("%d/100", item.Result.Score))
	if item.Cached {
		header += " " + Dim.Sprintf("(%s)", t.GetMessage("score.cached", 0, nil))
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", QuestEmoji, Accent.Sprint(item.URL))
	_, _ = fmt.Fprintf(w, "   %s\n\n", header)
	_, _ = fmt.Fprintln(w, item.Result.Feedback)

	if item.ReviewerNotes != "" {
		_, _ = fmt.Fprintf(w, "\n### %s\n%s\n", t.GetMessage("ui.reviewer_notes", 0, nil), item.ReviewerNotes)
	}
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 85:
		return Success
	case score >= 70:
		return Info
	case score >= 60:
		return Warning
	default:
		return Error
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeInternal, "error encoding JSON output", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeInternal, "error encoding YAML output", err)
	}
	return enc.Close()
}
