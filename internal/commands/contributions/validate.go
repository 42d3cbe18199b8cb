package contributions

import (
	"context"

	"github.com/urfave/cli/v3"

	cfg "github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/ui"
)

type ValidateCommand struct {
	provider ServiceProvider
}

func NewValidateCommand(provider ServiceProvider) *ValidateCommand {
	return &ValidateCommand{provider: provider}
}

func (c *ValidateCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     t.GetMessage("validate.usage", 0, nil),
		ArgsUsage: t.GetMessage("validate.args", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, _ := writers(cmd)

			prURL := cmd.Args().First()
			if prURL == "" {
				return domainErrors.ErrNoPRURLs
			}

			svc, err := c.provider(ctx, ServiceOptions{NoCache: true})
			if err != nil {
				return err
			}

			data := map[string]interface{}{"URL": prURL}
			if !svc.Validate(prURL) {
				ui.PrintError(out, t.GetMessage("validate.invalid", 0, data))
				return domainErrors.ErrInvalidPRURL.WithContext("url", prURL)
			}

			ui.PrintSuccess(out, t.GetMessage("validate.valid", 0, data))
			return nil
		},
	}
}
