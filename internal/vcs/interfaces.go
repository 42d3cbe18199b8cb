package vcs

import (
	"context"

	"github.com/devquest/devquest/internal/models"
)

// VCSClient reads pull request metadata from a hosting provider.
type VCSClient interface {
	// GetPullRequest fetches the live metadata of a pull request.
	GetPullRequest(ctx context.Context, ref models.PullRequestRef) (models.PRDetails, error)
}
