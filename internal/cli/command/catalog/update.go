package catalog

import (
	"context"
	"io"

	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type UpdateCommandFactory struct {
	svc CatalogService
}

func NewUpdateCommandFactory(svc CatalogService) *UpdateCommandFactory {
	return &UpdateCommandFactory{svc: svc}
}

func (f *UpdateCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Aliases:   []string{"u"},
		Usage:     t.GetMessage("update_usage", 0, nil),
		ArgsUsage: t.GetMessage("update_args", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			url := cmd.Args().First()

			var cfg models.GlobalConfig
			loading := t.GetMessage("loading_catalog", 0, map[string]interface{}{"URL": url})
			if url == "" {
				loading = t.GetMessage("loading_catalog_stored", 0, nil)
			}
			err := ui.WithSpinner(cmd.Root().ErrWriter, loading, func() error {
				var err error
				cfg, err = f.svc.Update(ctx, url)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			ui.PrintCatalog(out, cfg)
			PrintUpdated(out, t, cfg)
			return nil
		},
	}
}

// PrintUpdated reports how many emojis the refresh brought in.
func PrintUpdated(w io.Writer, t *i18n.Translations, cfg models.GlobalConfig) {
	size := cfg.ActiveCatalogSize()
	ui.PrintSuccess(w, t.GetMessage("catalog_updated", size, map[string]interface{}{
		"Count": size,
	}))
}
