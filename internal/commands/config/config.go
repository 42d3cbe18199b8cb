package config

import (
	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/config"
	"github.com/devquest/devquest/internal/i18n"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetTokenCommand(t, cfg),
			c.newSetDelayCommand(t, cfg),
			c.newSetGeminiKeyCommand(t, cfg),
		},
	}
}
