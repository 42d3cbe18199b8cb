package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/devquest/devquest/internal/models"
)

type (
	MockVCSClient struct {
		mock.Mock
	}

	MockReviewer struct {
		mock.Mock
	}
)

func (m *MockVCSClient) GetPullRequest(ctx context.Context, ref models.PullRequestRef) (models.PRDetails, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(models.PRDetails), args.Error(1)
}

func (m *MockReviewer) Review(ctx context.Context, details models.PRDetails, result models.ScoreResult) (string, error) {
	args := m.Called(ctx, details, result)
	return args.String(0), args.Error(1)
}
