package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/gitmoji/internal/catalog"
	catalogcmd "github.com/thomas-vilte/gitmoji/internal/cli/command/catalog"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/commit"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/config"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/handler"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/hook"
	"github.com/thomas-vilte/gitmoji/internal/cli/registry"
	cfg "github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/git"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/services"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/thomas-vilte/gitmoji/internal/version"
	"github.com/urfave/cli/v3"
)

const (
	langEnv       = "GITMOJI_LANG"
	accessibleEnv = "ACCESSIBLE"
)

func main() {
	ctx := context.Background()

	translations, err := loadTranslations()
	if err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	app, err := initializeApp(translations)
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		os.Exit(handler.ReportError(ctx, os.Stderr, err, translations))
	}
}

// loadTranslations picks the language from GITMOJI_LANG. Locale files are
// looked up in the locales folder of the config directory.
func loadTranslations() (*i18n.Translations, error) {
	lang := os.Getenv(langEnv)
	if lang == "" {
		lang = "en"
	}

	localesDir := ""
	if dir, err := cfg.NewStore("").Dir(); err == nil {
		localesDir = filepath.Join(dir, "locales")
	}

	translations, err := i18n.NewTranslations(lang, localesDir)
	if err != nil {
		log.Printf("Warning: %v, falling back to English", err)
		return i18n.NewTranslations("en", localesDir)
	}
	return translations, nil
}

func initializeApp(translations *i18n.Translations) (*cli.Command, error) {
	store := cfg.NewStore("")
	gitService := git.NewGitService()
	updater := catalog.NewUpdater(store)
	prompter := ui.NewHuhPrompter(translations, os.Getenv(accessibleEnv) != "")

	commitService := services.NewCommitService(store, gitService, prompter)
	configService := services.NewConfigService(store, gitService, updater, prompter)

	registerCommand := registry.NewRegistry(translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"init", config.NewInitCommandFactory(configService)},
		{"commit", commit.NewCommitCommandFactory(commitService)},
		{"list", catalogcmd.NewListCommandFactory(configService)},
		{"search", catalogcmd.NewSearchCommandFactory(configService)},
		{"update", catalogcmd.NewUpdateCommandFactory(configService)},
		{"config", config.NewConfigCommandFactory(configService)},
		{"hook", hook.NewHookCommandFactory(commitService)},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, err
		}
	}

	return &cli.Command{
		Name:                  cfg.AppName,
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag_verbose_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   translations.GetMessage("flag_config_dir_usage", 0, nil),
				Sources: cli.EnvVars(cfg.ConfigDirEnv),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			store.SetDir(cmd.String("config-dir"))
			return logger.With(ctx, "command", cmd.Args().First()), nil
		},
	}, nil
}
