package catalog

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type ListCommandFactory struct {
	svc CatalogService
}

func NewListCommandFactory(svc CatalogService) *ListCommandFactory {
	return &ListCommandFactory{svc: svc}
}

func (f *ListCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   t.GetMessage("list_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := f.svc.Load(ctx)
			if err != nil {
				return err
			}
			ui.PrintCatalog(cmd.Root().Writer, cfg)
			return nil
		},
	}
}
