package config

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/config"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/ui"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer
			if out == nil {
				out = os.Stdout
			}

			onOff := func(enabled bool) string {
				if enabled {
					return t.GetMessage("config.enabled", 0, nil)
				}
				return t.GetMessage("config.disabled", 0, nil)
			}
			secret := func(value string) string {
				if value == "" {
					return t.GetMessage("config.not_configured", 0, nil)
				}
				return t.GetMessage("config.configured", 0, nil)
			}

			ui.PrintKeyValue(out, t.GetMessage("config.path", 0, nil), cfg.PathFile)
			ui.PrintKeyValue(out, t.GetMessage("config.language", 0, nil), cfg.Language)
			ui.PrintKeyValue(out, t.GetMessage("config.delay", 0, nil), fmt.Sprintf("%d ms", cfg.SimulatedDelayMs))
			ui.PrintKeyValue(out, t.GetMessage("config.cache", 0, nil),
				fmt.Sprintf("%s (%dh)", onOff(cfg.UseCache), cfg.CacheTTLHours))
			ui.PrintKeyValue(out, t.GetMessage("config.concurrency", 0, nil), fmt.Sprintf("%d", cfg.MaxConcurrency))
			ui.PrintKeyValue(out, t.GetMessage("config.github_token", 0, nil), secret(cfg.EffectiveGitHubToken()))
			ui.PrintKeyValue(out, t.GetMessage("config.gemini_key", 0, nil), secret(cfg.EffectiveGeminiAPIKey()))
			ui.PrintKeyValue(out, t.GetMessage("config.gemini_model", 0, nil), cfg.GeminiModel)
			return nil
		},
	}
}
