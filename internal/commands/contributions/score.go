package contributions

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	cfg "github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/models"
	"github.com/devquest/devquest/internal/ui"
)

type ScoreCommand struct {
	provider ServiceProvider
}

func NewScoreCommand(provider ServiceProvider) *ScoreCommand {
	return &ScoreCommand{provider: provider}
}

func (c *ScoreCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "score",
		Aliases:   []string{"s"},
		Usage:     t.GetMessage("score.usage", 0, nil),
		ArgsUsage: t.GetMessage("score.args", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("score.format_usage", 0, nil),
				Value:   ui.FormatText,
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: t.GetMessage("score.no_cache_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "ai",
				Usage: t.GetMessage("score.ai_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			start := time.Now()
			out, errOut := writers(cmd)

			urls := cmd.Args().Slice()
			if len(urls) == 0 {
				return domainErrors.ErrNoPRURLs
			}

			format, err := ui.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			log.Info("executing score command",
				"count", len(urls),
				"format", format,
				"no_cache", cmd.Bool("no-cache"),
				"ai", cmd.Bool("ai"))

			svc, err := c.provider(ctx, ServiceOptions{
				NoCache: cmd.Bool("no-cache"),
				WithAI:  cmd.Bool("ai"),
			})
			if err != nil {
				log.Error("failed to create contribution service",
					"error", err,
					"duration_ms", time.Since(start).Milliseconds())
				return err
			}

			countData := map[string]interface{}{"Count": len(urls)}
			var results []models.ScoredContribution
			err = ui.WithSpinnerAndDuration(errOut,
				t.GetMessage("score.scoring", len(urls), countData),
				t.GetMessage("score.done", len(urls), countData),
				func() error {
					var batchErr error
					results, batchErr = svc.ScoreBatch(ctx, urls)
					return batchErr
				})
			if err != nil {
				log.Error("batch scoring aborted",
					"error", err,
					"duration_ms", time.Since(start).Milliseconds())
				return err
			}

			if err := ui.RenderScores(out, results, format, t); err != nil {
				return err
			}

			failed := 0
			for _, item := range results {
				if item.Result == nil {
					failed++
				}
			}

			log.Info("score command finished",
				"total", len(results),
				"failed", failed,
				"duration_ms", time.Since(start).Milliseconds())

			if failed > 0 {
				return domainErrors.NewAppError(domainErrors.TypeInput,
					t.GetMessage("score.partial_failure", 0, map[string]interface{}{
						"Failed": failed,
						"Total":  len(results),
					}), nil)
			}
			return nil
		},
	}
}
