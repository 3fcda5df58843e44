package config

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := f.svc.Load(ctx)
			if err != nil {
				return err
			}
			path, err := f.svc.Path()
			if err != nil {
				return err
			}
			printConfig(cmd.Root().Writer, t, path, cfg)
			return nil
		},
	}
}

func printConfig(w io.Writer, t *i18n.Translations, path string, cfg models.GlobalConfig) {
	label := func(id string) string {
		return t.GetMessage("config_show."+id, 0, nil)
	}

	lastUpdate := label("never")
	if cfg.LastUpdate != nil {
		lastUpdate = cfg.LastUpdate.Format(time.RFC3339)
	}

	_, _ = fmt.Fprintln(w, ui.Accent.Sprint(label("title")))
	_, _ = fmt.Fprintln(w, "━━━━━━━━━━━━━━━━━━━━━━━")
	ui.PrintKeyValue(w, label("path"), path)
	ui.PrintKeyValue(w, label("auto_add"), strconv.FormatBool(cfg.AutoAdd))
	ui.PrintKeyValue(w, label("specification"), cfg.Specification.Label())
	ui.PrintKeyValue(w, label("format"), cfg.Format.Label())
	ui.PrintKeyValue(w, label("signed"), strconv.FormatBool(cfg.Signed))
	ui.PrintKeyValue(w, label("scope"), strconv.FormatBool(cfg.Scope))
	ui.PrintKeyValue(w, label("update_url"), cfg.UpdateURL)
	ui.PrintKeyValue(w, label("last_update"), lastUpdate)
	ui.PrintKeyValue(w, label("catalog_size"), strconv.Itoa(cfg.ActiveCatalogSize()))
}
