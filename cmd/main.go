package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/commands/cache"
	"github.com/devquest/devquest/internal/commands/config"
	"github.com/devquest/devquest/internal/commands/contributions"
	"github.com/devquest/devquest/internal/commands/registry"
	cfg "github.com/devquest/devquest/internal/config"
	"github.com/devquest/devquest/internal/factory"
	"github.com/devquest/devquest/internal/i18n"
	"github.com/devquest/devquest/internal/logger"
	"github.com/devquest/devquest/internal/ui"
	"github.com/devquest/devquest/internal/version"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(os.Stderr, err, nil)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		stop()
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	serviceFactory := factory.NewContributionServiceFactory(cfgApp, translations)
	provider := serviceFactory.Provider()

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := map[string]registry.CommandFactory{
		"score":    contributions.NewScoreCommand(provider),
		"validate": contributions.NewValidateCommand(provider),
		"details":  contributions.NewDetailsCommand(provider),
		"config":   config.NewConfigCommandFactory(),
		"cache":    cache.NewCacheCommand(),
	}
	for name, f := range factories {
		if err := registerCommand.Register(name, f); err != nil {
			return nil, nil, err
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	})

	return &cli.Command{
		Name:        "devquest",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flags.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flags.verbose", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log := logger.Initialize(logger.Options{
				Debug:   cmd.Bool("debug"),
				Verbose: cmd.Bool("verbose"),
				Pretty:  true,
				Output:  os.Stderr,
			})
			log.Debug("configuration loaded",
				"path", cfgApp.PathFile,
				"language", cfgApp.Language,
				"delay_ms", cfgApp.SimulatedDelayMs)
			return logger.WithLogger(ctx, log), nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
