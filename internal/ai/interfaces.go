package ai

import (
	"context"

	"github.com/devquest/devquest/internal/models"
)

// ContributionReviewer writes free-form reviewer notes for a scored contribution.
type ContributionReviewer interface {
	// Review returns notes that complement the deterministic feedback.
	// It never changes the score or the breakdown.
	Review(ctx context.Context, details models.PRDetails, result models.ScoreResult) (string, error)
}
