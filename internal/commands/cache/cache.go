package cache

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/cache"
	"github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/ui"
)

type CacheCommand struct{}

func NewCacheCommand() *CacheCommand {
	return &CacheCommand{}
}

func (c *CacheCommand) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: t.GetMessage("cache.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "clean",
				Usage: t.GetMessage("cache.clean_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					out := cmd.Root().Writer
					if out == nil {
						out = os.Stdout
					}

					cacheService, err := cache.NewCache(cfg.CacheDir(), cfg.CacheTTL())
					if err != nil {
						return domainErrors.ErrCacheUnavailable.WithError(err)
					}

					if err := cacheService.Clean(); err != nil {
						return domainErrors.ErrCacheUnavailable.WithError(err)
					}

					logger.Info(ctx, "score cache cleared", "dir", cfg.CacheDir())
					ui.PrintSuccess(out, t.GetMessage("cache.cleaned", 0, nil))
					return nil
				},
			},
		},
	}
}
