package scorer

import (
	"math"

	"github.com/devquest/devquest/internal/models"
)

// category describes one sub-score: its generator range and offset, its
// weight in the composite, and the thresholds used by the feedback.
type category struct {
	key    string
	min    int
	max    int
	offset int
	// weight in percent; all weights add up to 100.
	weight int
	// recommendBelow triggers the category's recommendation. Zero means the
	// category never produces one.
	recommendBelow int
	get            func(models.Breakdown) int
	set            func(*models.Breakdown, int)
}

const (
	excellentTier = 85
	adequateTier  = 70
)

// categories is ordered; the composite is summed in this order.
var categories = []category{
	{
		key: "code_quality", min: 70, max: 100, offset: 1, weight: 30, recommendBelow: 80,
		get: func(b models.Breakdown) int { return b.CodeQuality },
		set: func(b *models.Breakdown, v int) { b.CodeQuality = v },
	},
	{
		key: "test_coverage", min: 60, max: 95, offset: 2, weight: 20, recommendBelow: 80,
		get: func(b models.Breakdown) int { return b.TestCoverage },
		set: func(b *models.Breakdown, v int) { b.TestCoverage = v },
	},
	{
		key: "documentation", min: 65, max: 95, offset: 3, weight: 15, recommendBelow: 80,
		get: func(b models.Breakdown) int { return b.Documentation },
		set: func(b *models.Breakdown, v int) { b.Documentation = v },
	},
	{
		key: "pr_description", min: 75, max: 100, offset: 4, weight: 15, recommendBelow: 80,
		get: func(b models.Breakdown) int { return b.PRDescription },
		set: func(b *models.Breakdown, v int) { b.PRDescription = v },
	},
	{
		key: "code_style", min: 80, max: 100, offset: 5, weight: 10, recommendBelow: 85,
		get: func(b models.Breakdown) int { return b.CodeStyle },
		set: func(b *models.Breakdown, v int) { b.CodeStyle = v },
	},
	{
		key: "impact", min: 70, max: 100, offset: 6, weight: 10,
		get: func(b models.Breakdown) int { return b.Impact },
		set: func(b *models.Breakdown, v int) { b.Impact = v },
	},
}

// ComputeBreakdown derives the six sub-scores from a seed (the PR number).
func ComputeBreakdown(seed int) models.Breakdown {
	var b models.Breakdown
	for _, c := range categories {
		c.set(&b, seededInt(seed, c.min, c.max, c.offset))
	}
	return b
}

// CompositeScore is the floored weighted sum of the breakdown:
// 0.30 code quality, 0.20 test coverage, 0.15 documentation,
// 0.15 PR description, 0.10 code style, 0.10 impact.
func CompositeScore(b models.Breakdown) int {
	total := 0.0
	for _, c := range categories {
		w := float64(c.weight) / 100
		total = float64(total + float64(float64(c.get(b))*w))
	}
	return int(math.Floor(total))
}
