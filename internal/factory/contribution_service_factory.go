package factory

import (
	"context"

	"github.com/devquest/devquest/internal/ai"
	"github.com/devquest/devquest/internal/ai/gemini"
	"github.com/devquest/devquest/internal/cache"
	"github.com/devquest/devquest/internal/commands/contributions"
	"github.com/devquest/devquest/internal/config"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/scorer"
	"github.com/devquest/devquest/internal/services"
	"github.com/devquest/devquest/internal/vcs/github"
)

// ReviewerConstructor builds the AI reviewer used by --ai.
type ReviewerConstructor func(ctx context.Context, cfg *config.Config) (ai.ContributionReviewer, error)

type ContributionServiceFactory struct {
	config      *config.Config
	trans       *i18n.Translations
	newReviewer ReviewerConstructor
	scorerOpts  []scorer.Option
}

type FactoryOption func(*ContributionServiceFactory)

// WithReviewerConstructor replaces the Gemini reviewer.
func WithReviewerConstructor(fn ReviewerConstructor) FactoryOption {
	return func(f *ContributionServiceFactory) {
		f.newReviewer = fn
	}
}

// WithScorerOptions adds options applied after the configured delay and phrasebook.
func WithScorerOptions(opts ...scorer.Option) FactoryOption {
	return func(f *ContributionServiceFactory) {
		f.scorerOpts = append(f.scorerOpts, opts...)
	}
}

func NewContributionServiceFactory(cfg *config.Config, trans *i18n.Translations, opts ...FactoryOption) *ContributionServiceFactory {
	f := &ContributionServiceFactory{
		config: cfg,
		trans:  trans,
		newReviewer: func(ctx context.Context, cfg *config.Config) (ai.ContributionReviewer, error) {
			return gemini.NewGeminiReviewer(ctx, cfg)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateContributionService wires scorer, cache, GitHub client and, when
// requested, the AI reviewer. A cache that cannot be opened is skipped.
func (f *ContributionServiceFactory) CreateContributionService(ctx context.Context, opts contributions.ServiceOptions) (*services.ContributionService, error) {
	log := logger.FromContext(ctx)

	scorerOpts := []scorer.Option{scorer.WithDelay(f.config.SimulatedDelay())}
	if f.trans != nil {
		scorerOpts = append(scorerOpts, scorer.WithPhrasebook(f.trans))
	}
	scorerOpts = append(scorerOpts, f.scorerOpts...)

	svcOpts := []services.ContributionOption{
		services.WithConfig(f.config),
		services.WithScorer(scorer.New(scorerOpts...)),
		services.WithVCSClient(github.NewGitHubClient(f.config.EffectiveGitHubToken())),
	}

	if f.config.UseCache && !opts.NoCache {
		c, err := cache.NewCache(f.config.CacheDir(), f.config.CacheTTL())
		if err != nil {
			log.Warn("score cache disabled", "error", err)
		} else {
			svcOpts = append(svcOpts, services.WithCache(c))
		}
	}

	if opts.WithAI {
		reviewer, err := f.newReviewer(ctx, f.config)
		if err != nil {
			return nil, err
		}
		svcOpts = append(svcOpts, services.WithReviewer(reviewer))
	}

	return services.NewContributionService(svcOpts...), nil
}

// Provider adapts the factory to the commands' ServiceProvider.
func (f *ContributionServiceFactory) Provider() contributions.ServiceProvider {
	return func(ctx context.Context, opts contributions.ServiceOptions) (contributions.ContributionService, error) {
		svc, err := f.CreateContributionService(ctx, opts)
		if err != nil {
			return nil, err
		}
		return svc, nil
	}
}
