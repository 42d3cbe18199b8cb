// Package scorer implements the deterministic contribution scoring used to
// rate pull requests submitted against DevQuest tasks.
//
// A score is a pure function of the pull request number: six sub-scores are
// drawn from a seeded generator, combined into a weighted composite and
// explained in markdown feedback. Scoring waits a fixed simulated latency
// first, standing in for a remote analysis service.
package scorer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/models"
	"github.com/devquest/devquest/internal/regex"
)

// DefaultDelay is the simulated latency of one scoring call.
const DefaultDelay = time.Second

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Clock returns the current time.
type Clock func() time.Time

type Scorer struct {
	delay      time.Duration
	sleep      Sleeper
	now        Clock
	phrasebook Phrasebook
}

type Option func(*Scorer)

func WithDelay(d time.Duration) Option {
	return func(s *Scorer) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithSleeper(sleep Sleeper) Option {
	return func(s *Scorer) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

func WithClock(now Clock) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPhrasebook localizes feedback text. Scores are unaffected.
func WithPhrasebook(p Phrasebook) Option {
	return func(s *Scorer) {
		if p != nil {
			s.phrasebook = p
		}
	}
}

func New(opts ...Option) *Scorer {
	s := &Scorer{
		delay:      DefaultDelay,
		sleep:      SleepContext,
		now:        time.Now,
		phrasebook: defaultPhrasebook{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SleepContext is the default Sleeper. Each call owns its timer, so
// concurrent callers never wait on each other.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ScoreContribution scores the pull request behind prURL. It fails with
// errors.ErrInvalidPRURL when prURL does not contain a GitHub PR path.
func (s *Scorer) ScoreContribution(ctx context.Context, prURL string) (models.ScoreResult, error) {
	log := logger.FromContext(ctx)

	log.Debug("simulating scoring latency",
		"pr_url", prURL,
		"delay_ms", s.delay.Milliseconds())

	if err := s.sleep(ctx, s.delay); err != nil {
		return models.ScoreResult{}, err
	}

	ref, err := ParsePRURL(prURL)
	if err != nil {
		log.Debug("rejected pull request url", "pr_url", prURL)
		return models.ScoreResult{}, err
	}

	result := s.Score(ref.Number)

	log.Debug("contribution scored",
		"pr", ref.String(),
		"score", result.Score)

	return result, nil
}

// Score computes the result for a PR number without any delay.
func (s *Scorer) Score(prNumber int) models.ScoreResult {
	b := ComputeBreakdown(prNumber)
	score := CompositeScore(b)
	return models.ScoreResult{
		Score:     score,
		Breakdown: b,
		Feedback:  buildFeedback(s.phrasebook, score, b),
	}
}

// Feedback renders feedback for an arbitrary score and breakdown with this
// scorer's phrasebook.
func (s *Scorer) Feedback(score int, b models.Breakdown) string {
	return buildFeedback(s.phrasebook, score, b)
}

// GetPRDetails returns placeholder metadata for prURL. CreatedAt is the
// scorer's clock at call time, so two calls are not equal.
func (s *Scorer) GetPRDetails(prURL string) (models.PRDetails, error) {
	ref, err := ParsePRURL(prURL)
	if err != nil {
		return models.PRDetails{}, err
	}

	return models.PRDetails{
		Owner:     ref.Owner,
		Repo:      ref.Repo,
		PRNumber:  ref.Number,
		URL:       prURL,
		Title:     fmt.Sprintf("Pull Request #%d", ref.Number),
		State:     "open",
		Author:    "contributor",
		CreatedAt: s.now().UTC(),
	}, nil
}

// ParsePRURL extracts owner, repo and number from the first
// github.com/<owner>/<repo>/pull/<number> occurrence in prURL.
func ParsePRURL(prURL string) (models.PullRequestRef, error) {
	m := regex.GitHubPRURL.FindStringSubmatch(prURL)
	if m == nil {
		return models.PullRequestRef{}, domainErrors.ErrInvalidPRURL.WithContext("url", prURL)
	}

	number, err := strconv.Atoi(m[3])
	if err != nil || number <= 0 {
		return models.PullRequestRef{}, domainErrors.ErrInvalidPRURL.
			WithContext("url", prURL).
			WithError(err)
	}

	return models.PullRequestRef{
		Owner:  m[1],
		Repo:   m[2],
		Number: number,
	}, nil
}

// ValidatePR reports whether prURL is exactly
// https://github.com/<owner>/<repo>/pull/<number>, with nothing after it.
func ValidatePR(prURL string) bool {
	return regex.GitHubPRURLStrict.MatchString(prURL)
}
