package github

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/models"
)

var testRef = models.PullRequestRef{Owner: "acme", Repo: "widget", Number: 42}

func responseWithStatus(code int) *github.Response {
	return &github.Response{Response: &http.Response{StatusCode: code, Header: http.Header{}}}
}

func TestGitHubClient_GetPullRequest(t *testing.T) {
	t.Run("should map PR fields", func(t *testing.T) {
		// Arrange
		mockPR := &MockPRService{}
		client := NewGitHubClientWithServices(mockPR)
		created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

		mockPR.On("Get", mock.Anything, "acme", "widget", 42).
			Return(&github.PullRequest{
				Title:     github.Ptr("Add bounty payouts"),
				State:     github.Ptr("open"),
				HTMLURL:   github.Ptr("https://github.com/acme/widget/pull/42"),
				User:      &github.User{Login: github.Ptr("octocat")},
				CreatedAt: &github.Timestamp{Time: created},
			}, responseWithStatus(http.StatusOK), nil)

		// Act
		details, err := client.GetPullRequest(context.Background(), testRef)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.PRDetails{
			Owner:     "acme",
			Repo:      "widget",
			PRNumber:  42,
			URL:       "https://github.com/acme/widget/pull/42",
			Title:     "Add bounty payouts",
			State:     "open",
			Author:    "octocat",
			CreatedAt: created,
		}, details)
		mockPR.AssertExpectations(t)
	})

	t.Run("should report merged PRs as merged", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := NewGitHubClientWithServices(mockPR)

		mockPR.On("Get", mock.Anything, "acme", "widget", 42).
			Return(&github.PullRequest{State: github.Ptr("closed"), Merged: github.Ptr(true)}, responseWithStatus(http.StatusOK), nil)

		details, err := client.GetPullRequest(context.Background(), testRef)

		require.NoError(t, err)
		assert.Equal(t, "merged", details.State)
		assert.True(t, details.CreatedAt.IsZero())
	})
}

func TestGitHubClient_GetPullRequest_ErrorCases(t *testing.T) {
	tests := []struct {
		name string
		resp *github.Response
		want *domainErrors.AppError
	}{
		{"unauthorized", responseWithStatus(http.StatusUnauthorized), domainErrors.ErrGitHubTokenInvalid},
		{"not found", responseWithStatus(http.StatusNotFound), domainErrors.ErrPullRequestNotFound},
		{"forbidden", responseWithStatus(http.StatusForbidden), domainErrors.ErrGitHubRateLimit},
		{"too many requests", responseWithStatus(http.StatusTooManyRequests), domainErrors.ErrGitHubRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPR := &MockPRService{}
			client := NewGitHubClientWithServices(mockPR)
			mockPR.On("Get", mock.Anything, "acme", "widget", 42).Return(nil, tt.resp, assert.AnError)

			_, err := client.GetPullRequest(context.Background(), testRef)

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, assert.AnError)
		})
	}

	t.Run("should wrap other failures", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := NewGitHubClientWithServices(mockPR)
		mockPR.On("Get", mock.Anything, "acme", "widget", 42).Return(nil, nil, assert.AnError)

		_, err := client.GetPullRequest(context.Background(), testRef)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get PR acme/widget#42")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNewGitHubClient(t *testing.T) {
	assert.NotNil(t, NewGitHubClient("").prService)
	assert.NotNil(t, NewGitHubClient("token").prService)
}
