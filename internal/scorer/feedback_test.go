package scorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devquest/devquest/internal/models"
)

func allScores(v int) models.Breakdown {
	return models.Breakdown{CodeQuality: v, TestCoverage: v, Documentation: v, PRDescription: v, CodeStyle: v, Impact: v}
}

// banner returns the paragraph after the overall score header.
func banner(feedback string) string {
	parts := strings.SplitN(feedback, "\n\n", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score int
		want  Verdict
	}{
		{100, VerdictExcellent},
		{95, VerdictExcellent},
		{90, VerdictExcellent},
		{89, VerdictGreat},
		{80, VerdictGreat},
		{79, VerdictGood},
		{70, VerdictGood},
		{69, VerdictAcceptable},
		{65, VerdictAcceptable},
		{60, VerdictAcceptable},
		{59, VerdictNeedsImprovement},
		{0, VerdictNeedsImprovement},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerdictFor(tt.score), "score %d", tt.score)
	}
}

func TestBuildFeedback_Banner(t *testing.T) {
	tests := []struct {
		score  int
		prefix string
	}{
		{95, "🌟 **Excellent work!**"},
		{90, "🌟 **Excellent work!**"},
		{80, "✅ **Great job!**"},
		{70, "👍 **Good work!**"},
		{65, "⚠️ **Acceptable.**"},
		{60, "⚠️ **Acceptable.**"},
		{59, "❌ **Needs Improvement.**"},
	}

	for _, tt := range tests {
		feedback := BuildFeedback(tt.score, allScores(90))

		assert.True(t, strings.HasPrefix(feedback, "**Overall Score: "), "score %d", tt.score)
		assert.True(t, strings.HasPrefix(banner(feedback), tt.prefix), "score %d got %q", tt.score, banner(feedback))
	}
}

func TestBuildFeedback_CategoryComments(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  []string
	}{
		{
			name:  "excellent at 85",
			value: 85,
			want: []string{
				"- **Code Quality (85/100)**: Excellent code structure and best practices followed.",
				"- **Test Coverage (85/100)**: Comprehensive test coverage for new features.",
				"- **Impact (85/100)**: Significant positive impact on the project.",
			},
		},
		{
			name:  "adequate at 70",
			value: 70,
			want: []string{
				"- **Documentation (70/100)**: Documentation is present but could be more comprehensive.",
				"- **PR Description (70/100)**: Good PR description, could include more context.",
				"- **Code Style (70/100)**: Mostly follows code style guidelines.",
			},
		},
		{
			name:  "needs improvement below 70",
			value: 69,
			want: []string{
				"- **Code Quality (69/100)**: Code quality could be improved with better structure and practices.",
				"- **Code Style (69/100)**: Code style inconsistencies detected. Please follow project guidelines.",
				"- **Impact (69/100)**: Limited impact. Consider addressing more critical issues.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback := BuildFeedback(tt.value, allScores(tt.value))
			for _, line := range tt.want {
				assert.Contains(t, feedback, line+"\n")
			}
		})
	}
}

func TestBuildFeedback_Recommendations(t *testing.T) {
	t.Run("all above thresholds ends with closing line", func(t *testing.T) {
		feedback := BuildFeedback(88, models.Breakdown{
			CodeQuality: 80, TestCoverage: 80, Documentation: 80, PRDescription: 80, CodeStyle: 85, Impact: 70,
		})

		assert.True(t, strings.HasSuffix(feedback, "**Recommendations:**\n- Keep up the excellent work!\n"))
		_, recs, _ := strings.Cut(feedback, "**Recommendations:**\n")
		assert.Equal(t, 1, strings.Count(recs, "- "))
	})

	t.Run("each threshold adds its suggestion in order", func(t *testing.T) {
		feedback := BuildFeedback(70, models.Breakdown{
			CodeQuality: 79, TestCoverage: 79, Documentation: 79, PRDescription: 79, CodeStyle: 84, Impact: 0,
		})

		assert.True(t, strings.HasSuffix(feedback, "**Recommendations:**\n"+
			"- Refactor complex functions\n"+
			"- Add more unit tests\n"+
			"- Improve code documentation\n"+
			"- Enhance PR description\n"+
			"- Follow style guidelines\n"))
		assert.NotContains(t, feedback, "Keep up the excellent work!")
	})

	t.Run("impact never produces a recommendation", func(t *testing.T) {
		feedback := BuildFeedback(90, models.Breakdown{
			CodeQuality: 100, TestCoverage: 100, Documentation: 100, PRDescription: 100, CodeStyle: 100, Impact: 1,
		})

		assert.True(t, strings.HasSuffix(feedback, "- Keep up the excellent work!\n"))
	})
}

func TestBuildFeedback_MatchesScorer(t *testing.T) {
	s := newTestScorer()
	result := s.Score(42)

	assert.Equal(t, BuildFeedback(result.Score, result.Breakdown), result.Feedback)
	assert.Equal(t, result.Feedback, s.Feedback(result.Score, result.Breakdown))
}

func TestEnglishPhrases_Complete(t *testing.T) {
	ids := []string{
		"feedback.overall_score",
		"feedback.breakdown_heading",
		"feedback.recommendations_heading",
		"feedback.recommendation.none",
	}
	for _, v := range []Verdict{VerdictExcellent, VerdictGreat, VerdictGood, VerdictAcceptable, VerdictNeedsImprovement} {
		ids = append(ids, "feedback.verdict."+string(v))
	}
	for _, c := range categories {
		ids = append(ids, "feedback.category."+c.key)
		for _, tier := range []string{"excellent", "adequate", "needs_improvement"} {
			ids = append(ids, "feedback.comment."+c.key+"."+tier)
		}
		if c.recommendBelow > 0 {
			ids = append(ids, "feedback.recommendation."+c.key)
		}
	}

	for _, id := range ids {
		assert.NotEmpty(t, EnglishPhrases[id], id)
	}
	assert.Len(t, EnglishPhrases, len(ids))
}
