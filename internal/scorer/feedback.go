package scorer

import (
	"fmt"
	"strings"

	"github.com/devquest/devquest/internal/models"
)

// Phrasebook supplies the fixed phrases used in feedback text.
// i18n.Translations satisfies it.
type Phrasebook interface {
	GetMessage(messageID string, count int, templateData interface{}) string
}

// Verdict is the overall tier selected by the composite score.
type Verdict string

const (
	VerdictExcellent        Verdict = "excellent"
	VerdictGreat            Verdict = "great"
	VerdictGood             Verdict = "good"
	VerdictAcceptable       Verdict = "acceptable"
	VerdictNeedsImprovement Verdict = "needs_improvement"
)

// VerdictFor maps a composite score to its tier. Lower bounds are inclusive.
func VerdictFor(score int) Verdict {
	switch {
	case score >= 90:
		return VerdictExcellent
	case score >= 80:
		return VerdictGreat
	case score >= 70:
		return VerdictGood
	case score >= 60:
		return VerdictAcceptable
	default:
		return VerdictNeedsImprovement
	}
}

func commentTier(value int) string {
	switch {
	case value >= excellentTier:
		return "excellent"
	case value >= adequateTier:
		return "adequate"
	default:
		return "needs_improvement"
	}
}

// BuildFeedback renders feedback with the built-in English phrases.
func BuildFeedback(score int, b models.Breakdown) string {
	return buildFeedback(defaultPhrasebook{}, score, b)
}

func buildFeedback(p Phrasebook, score int, b models.Breakdown) string {
	msg := func(id string) string { return p.GetMessage(id, 0, nil) }

	var sb strings.Builder

	fmt.Fprintf(&sb, "**%s: %d/100**\n\n", msg("feedback.overall_score"), score)
	sb.WriteString(msg("feedback.verdict." + string(VerdictFor(score))))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "**%s:**\n\n", msg("feedback.breakdown_heading"))
	for _, c := range categories {
		v := c.get(b)
		fmt.Fprintf(&sb, "- **%s (%d/100)**: %s\n",
			msg("feedback.category."+c.key),
			v,
			msg("feedback.comment."+c.key+"."+commentTier(v)))
	}

	fmt.Fprintf(&sb, "\n**%s:**\n", msg("feedback.recommendations_heading"))
	recommended := 0
	for _, c := range categories {
		if c.recommendBelow > 0 && c.get(b) < c.recommendBelow {
			fmt.Fprintf(&sb, "- %s\n", msg("feedback.recommendation."+c.key))
			recommended++
		}
	}
	if recommended == 0 {
		fmt.Fprintf(&sb, "- %s\n", msg("feedback.recommendation.none"))
	}

	return sb.String()
}

// defaultPhrasebook carries the canonical English wording. The same entries
// are shipped as the English locale file in internal/i18n.
type defaultPhrasebook struct{}

func (defaultPhrasebook) GetMessage(messageID string, _ int, _ interface{}) string {
	if s, ok := EnglishPhrases[messageID]; ok {
		return s
	}
	return messageID
}

// EnglishPhrases maps phrase IDs to their English text.
var EnglishPhrases = map[string]string{
	"feedback.overall_score":           "Overall Score",
	"feedback.breakdown_heading":       "Detailed Breakdown",
	"feedback.recommendations_heading": "Recommendations",

	"feedback.verdict.excellent":         "🌟 **Excellent work!** This is a high-quality contribution.",
	"feedback.verdict.great":             "✅ **Great job!** This is a solid contribution with minor areas for improvement.",
	"feedback.verdict.good":              "👍 **Good work!** This contribution meets the quality standards.",
	"feedback.verdict.acceptable":        "⚠️ **Acceptable.** This contribution has some areas that need attention.",
	"feedback.verdict.needs_improvement": "❌ **Needs Improvement.** This contribution requires significant revisions.",

	"feedback.category.code_quality":   "Code Quality",
	"feedback.category.test_coverage":  "Test Coverage",
	"feedback.category.documentation":  "Documentation",
	"feedback.category.pr_description": "PR Description",
	"feedback.category.code_style":     "Code Style",
	"feedback.category.impact":         "Impact",

	"feedback.comment.code_quality.excellent":         "Excellent code structure and best practices followed.",
	"feedback.comment.code_quality.adequate":          "Good code quality with some room for optimization.",
	"feedback.comment.code_quality.needs_improvement": "Code quality could be improved with better structure and practices.",

	"feedback.comment.test_coverage.excellent":         "Comprehensive test coverage for new features.",
	"feedback.comment.test_coverage.adequate":          "Adequate test coverage, consider adding edge cases.",
	"feedback.comment.test_coverage.needs_improvement": "Test coverage is insufficient. Please add more tests.",

	"feedback.comment.documentation.excellent":         "Well-documented code with clear comments and README updates.",
	"feedback.comment.documentation.adequate":          "Documentation is present but could be more comprehensive.",
	"feedback.comment.documentation.needs_improvement": "Documentation is lacking. Please add comments and update docs.",

	"feedback.comment.pr_description.excellent":         "Clear and detailed PR description explaining changes.",
	"feedback.comment.pr_description.adequate":          "Good PR description, could include more context.",
	"feedback.comment.pr_description.needs_improvement": "PR description needs more detail about what was changed and why.",

	"feedback.comment.code_style.excellent":         "Excellent adherence to project coding standards.",
	"feedback.comment.code_style.adequate":          "Mostly follows code style guidelines.",
	"feedback.comment.code_style.needs_improvement": "Code style inconsistencies detected. Please follow project guidelines.",

	"feedback.comment.impact.excellent":         "Significant positive impact on the project.",
	"feedback.comment.impact.adequate":          "Good contribution with measurable impact.",
	"feedback.comment.impact.needs_improvement": "Limited impact. Consider addressing more critical issues.",

	"feedback.recommendation.code_quality":   "Refactor complex functions",
	"feedback.recommendation.test_coverage":  "Add more unit tests",
	"feedback.recommendation.documentation":  "Improve code documentation",
	"feedback.recommendation.pr_description": "Enhance PR description",
	"feedback.recommendation.code_style":     "Follow style guidelines",
	"feedback.recommendation.none":           "Keep up the excellent work!",
}
