package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/models"
	"github.com/devquest/devquest/internal/vcs"
)

var _ vcs.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
}

type GitHubClient struct {
	prService PullRequestsService
}

// NewGitHubClient builds a client. An empty token gives unauthenticated
// access with GitHub's lower rate limit.
func NewGitHubClient(token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService: client.PullRequests,
	}
}

func NewGitHubClientWithServices(prService PullRequestsService) *GitHubClient {
	return &GitHubClient{
		prService: prService,
	}
}

func (ghc *GitHubClient) GetPullRequest(ctx context.Context, ref models.PullRequestRef) (models.PRDetails, error) {
	log := logger.FromContext(ctx)

	log.Debug("fetching github pull request",
		"owner", ref.Owner,
		"repo", ref.Repo,
		"pr_number", ref.Number)

	pr, resp, err := ghc.prService.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		log.Error("failed to fetch github PR",
			"error", err,
			"pr", ref.String())
		return models.PRDetails{}, mapResponseError(resp, err, ref)
	}

	details := models.PRDetails{
		Owner:    ref.Owner,
		Repo:     ref.Repo,
		PRNumber: ref.Number,
		URL:      pr.GetHTMLURL(),
		Title:    pr.GetTitle(),
		State:    prState(pr),
		Author:   pr.GetUser().GetLogin(),
	}
	if pr.CreatedAt != nil {
		details.CreatedAt = pr.GetCreatedAt().UTC()
	}

	log.Debug("github pull request fetched",
		"pr", ref.String(),
		"state", details.State)

	return details, nil
}

// prState reports "merged" for merged pull requests, which GitHub lists as closed.
func prState(pr *github.PullRequest) string {
	if pr.GetMerged() {
		return "merged"
	}
	return pr.GetState()
}

func mapResponseError(resp *github.Response, err error, ref models.PullRequestRef) error {
	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return domainErrors.ErrGitHubTokenInvalid.
				WithContext("operation", "get PR").
				WithError(err)
		case http.StatusNotFound:
			return domainErrors.ErrPullRequestNotFound.
				WithContext("operation", "get PR").
				WithContext("pr", ref.String()).
				WithError(err)
		case http.StatusForbidden, http.StatusTooManyRequests:
			return domainErrors.ErrGitHubRateLimit.
				WithContext("operation", "get PR").
				WithContext("retry_after", resp.Header.Get("Retry-After")).
				WithError(err)
		}
	}
	return domainErrors.NewAppError(domainErrors.TypeVCS, fmt.Sprintf("failed to get PR %s", ref), err)
}
