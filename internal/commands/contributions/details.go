package contributions

import (
	"context"

	"github.com/urfave/cli/v3"

	cfg "github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/ui"
)

type DetailsCommand struct {
	provider ServiceProvider
}

func NewDetailsCommand(provider ServiceProvider) *DetailsCommand {
	return &DetailsCommand{provider: provider}
}

func (c *DetailsCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "details",
		Aliases:   []string{"d"},
		Usage:     t.GetMessage("details.usage", 0, nil),
		ArgsUsage: t.GetMessage("validate.args", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "live",
				Usage: t.GetMessage("details.live_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("score.format_usage", 0, nil),
				Value:   ui.FormatText,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, _ := writers(cmd)

			prURL := cmd.Args().First()
			if prURL == "" {
				return domainErrors.ErrNoPRURLs
			}

			format, err := ui.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			svc, err := c.provider(ctx, ServiceOptions{NoCache: true})
			if err != nil {
				return err
			}

			details, err := svc.Details(ctx, prURL, cmd.Bool("live"))
			if err != nil {
				logger.Error(ctx, "failed to get PR details", err, "pr_url", prURL)
				return err
			}

			return ui.RenderDetails(out, details, format, t)
		},
	}
}
