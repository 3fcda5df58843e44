package catalog

import (
	"context"
	"strings"

	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type SearchCommandFactory struct {
	svc CatalogService
}

func NewSearchCommandFactory(svc CatalogService) *SearchCommandFactory {
	return &SearchCommandFactory{svc: svc}
}

func (f *SearchCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     t.GetMessage("search_usage", 0, nil),
		ArgsUsage: t.GetMessage("search_args", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if text == "" {
				return errors.ErrMissingArgument.
					WithContext("argument", "text").
					WithSuggestion("gitmoji search " + t.GetMessage("search_args", 0, nil))
			}

			cfg, err := f.svc.Search(ctx, text)
			if err != nil {
				return err
			}

			if cfg.ActiveCatalogSize() == 0 {
				ui.PrintWarning(cmd.Root().ErrWriter, t.GetMessage("no_match", 0, map[string]interface{}{
					"Text": text,
				}))
				return nil
			}
			ui.PrintCatalog(cmd.Root().Writer, cfg)
			return nil
		},
	}
}
