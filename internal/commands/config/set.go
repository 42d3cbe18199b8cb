package config

import (
	"context"
	"errors"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/ui"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return newSetCommand(t, cfg, "set-lang", "config.set_lang_usage", func(value string) error {
		lang := strings.ToLower(value)
		supported := t.SupportedLanguages()
		if !slices.Contains(supported, lang) {
			return domainErrors.NewAppError(domainErrors.TypeConfiguration,
				t.GetMessage("config.unsupported_language", 0, map[string]interface{}{
					"Lang":      value,
					"Available": strings.Join(supported, ", "),
				}), nil)
		}
		cfg.Language = lang
		return nil
	})
}

func (c *ConfigCommandFactory) newSetTokenCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return newSetCommand(t, cfg, "set-token", "config.set_token_usage", func(value string) error {
		cfg.GitHubToken = value
		return nil
	})
}

func (c *ConfigCommandFactory) newSetDelayCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return newSetCommand(t, cfg, "set-delay", "config.set_delay_usage", func(value string) error {
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return domainErrors.ErrInvalidConfig.
				WithContext("simulated_delay_ms", value).
				WithSuggestion(t.GetMessage("config.invalid_delay", 0, nil))
		}
		cfg.SimulatedDelayMs = ms
		return nil
	})
}

func (c *ConfigCommandFactory) newSetGeminiKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return newSetCommand(t, cfg, "set-gemini-key", "config.set_gemini_key_usage", func(value string) error {
		cfg.GeminiAPIKey = value
		return nil
	})
}

// newSetCommand builds a subcommand that takes one value, applies it and saves the config.
func newSetCommand(t *i18n.Translations, cfg *config.Config, name, usageID string, apply func(value string) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     t.GetMessage(usageID, 0, nil),
		ArgsUsage: t.GetMessage("config.value_args", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer
			if out == nil {
				out = os.Stdout
			}

			value := strings.TrimSpace(command.Args().First())
			if value == "" {
				return errors.New(t.GetMessage("config.missing_value", 0, nil))
			}

			if err := apply(value); err != nil {
				return err
			}

			if err := config.SaveConfig(cfg); err != nil {
				return domainErrors.ErrInvalidConfig.WithError(err)
			}

			logger.Info(ctx, "configuration updated", "setting", name)
			ui.PrintSuccess(out, t.GetMessage("config.saved", 0, nil))
			return nil
		},
	}
}
