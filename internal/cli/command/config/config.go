package config

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/urfave/cli/v3"
)

type ConfigReader interface {
	Load(ctx context.Context) (models.GlobalConfig, error)
	Path() (string, error)
}

type ConfigCommandFactory struct {
	svc ConfigReader
}

func NewConfigCommandFactory(svc ConfigReader) *ConfigCommandFactory {
	return &ConfigCommandFactory{svc: svc}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_usage", 0, nil),
		Commands: []*cli.Command{
			f.newShowCommand(t),
		},
	}
}
