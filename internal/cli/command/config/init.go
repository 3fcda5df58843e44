package config

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/cli/command/catalog"
	"github.com/thomas-vilte/gitmoji/internal/cli/completion"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type Initializer interface {
	Configure(ctx context.Context, useDefault bool) (models.GlobalConfig, error)
	Fetch(ctx context.Context, cfg models.GlobalConfig) (models.GlobalConfig, error)
}

type InitCommandFactory struct {
	svc Initializer
}

func NewInitCommandFactory(svc Initializer) *InitCommandFactory {
	return &InitCommandFactory{svc: svc}
}

func (f *InitCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "init",
		Aliases:       []string{"i"},
		Usage:         t.GetMessage("init_usage", 0, nil),
		ShellComplete: completion.FlagComplete,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "default",
				Usage: t.GetMessage("init_default_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := f.svc.Configure(ctx, cmd.Bool("default"))
			if err != nil {
				return err
			}

			// prompts are done, the spinner owns the terminal from here
			loading := t.GetMessage("loading_catalog", 0, map[string]interface{}{"URL": cfg.UpdateURL})
			err = ui.WithSpinner(cmd.Root().ErrWriter, loading, func() error {
				var err error
				cfg, err = f.svc.Fetch(ctx, cfg)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			ui.PrintCatalog(out, cfg)
			catalog.PrintUpdated(out, t, cfg)
			return nil
		},
	}
}
