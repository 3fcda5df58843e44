package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thomas-vilte/gitmoji/internal/commit"
	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

// defaultScope pre-fills the scope input of the default grammar.
const defaultScope = "*"

// HuhPrompter asks the configuration and commit questions in the terminal.
type HuhPrompter struct {
	t          *i18n.Translations
	accessible bool
}

func NewHuhPrompter(t *i18n.Translations, accessible bool) *HuhPrompter {
	return &HuhPrompter{t: t, accessible: accessible}
}

func (p *HuhPrompter) msg(id string) string {
	return p.t.GetMessage(id, 0, nil)
}

func (p *HuhPrompter) run(ctx context.Context, fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(p.accessible).
		RunWithContext(ctx)
}

// AskConfig builds a new configuration from the user's answers. The
// scope question is only asked for the default grammar.
func (p *HuhPrompter) AskConfig(ctx context.Context) (models.GlobalConfig, error) {
	var (
		autoAdd bool
		signed  bool
		scope   bool
		spec    = models.SpecificationDefault
		format  = models.FormatUseCode
	)

	err := p.run(ctx,
		huh.NewConfirm().Title(p.msg("prompt.auto_add")).Value(&autoAdd),
		huh.NewSelect[models.CommitSpecification]().
			Title(p.msg("prompt.specification")).
			Options(specificationOptions()...).
			Value(&spec),
		huh.NewSelect[models.EmojiFormat]().
			Title(p.msg("prompt.format")).
			Options(formatOptions()...).
			Value(&format),
		huh.NewConfirm().Title(p.msg("prompt.signed")).Value(&signed),
	)
	if err != nil {
		return models.GlobalConfig{}, err
	}

	if spec == models.SpecificationDefault {
		if err := p.run(ctx, huh.NewConfirm().Title(p.msg("prompt.scope_enabled")).Value(&scope)); err != nil {
			return models.GlobalConfig{}, err
		}
	}

	updateURL := models.DefaultUpdateURL(spec)
	err = p.run(ctx,
		huh.NewInput().
			Title(p.msg("prompt.update_url")).
			Value(&updateURL).
			Validate(config.ValidateURL),
	)
	if err != nil {
		return models.GlobalConfig{}, err
	}

	return models.NewGlobalConfig(autoAdd, spec, format, signed, scope, strings.TrimSpace(updateURL)), nil
}

// AskSelection asks for the emoji, the optional scope, the title and the
// body of a commit.
func (p *HuhPrompter) AskSelection(ctx context.Context, cfg models.GlobalConfig) (commit.Selection, error) {
	idx := 0
	picker := huh.NewSelect[int]().
		Title(p.msg("prompt.pick_emoji")).
		Options(catalogOptions(cfg)...).
		Filtering(true).
		Height(12).
		Value(&idx)
	if err := p.run(ctx, picker); err != nil {
		return commit.Selection{}, err
	}

	var scope, title, description string
	fields := make([]huh.Field, 0, 3)
	if cfg.Scope {
		scope = initialScope(cfg.Specification)
		fields = append(fields, huh.NewInput().Title(p.msg("prompt.scope")).Value(&scope))
	}
	fields = append(fields,
		huh.NewInput().
			Title(p.msg("prompt.title")).
			Value(&title).
			Validate(p.validateTitle),
		huh.NewInput().Title(p.msg("prompt.body")).Value(&description),
	)
	if err := p.run(ctx, fields...); err != nil {
		return commit.Selection{}, err
	}

	return selectionAt(cfg, idx, scopeValue(scope), strings.TrimSpace(title), strings.TrimSpace(description)), nil
}

func (p *HuhPrompter) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New(p.msg("prompt.title_required"))
	}
	return nil
}

func specificationOptions() []huh.Option[models.CommitSpecification] {
	opts := make([]huh.Option[models.CommitSpecification], 0, len(models.Specifications))
	for _, s := range models.Specifications {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}

func formatOptions() []huh.Option[models.EmojiFormat] {
	opts := make([]huh.Option[models.EmojiFormat], 0, len(models.EmojiFormats))
	for _, f := range models.EmojiFormats {
		opts = append(opts, huh.NewOption(f.Label(), f))
	}
	return opts
}

// catalogOptions indexes the active catalog so the picked value maps back
// to its entry.
func catalogOptions(cfg models.GlobalConfig) []huh.Option[int] {
	var labels []string
	switch cfg.Specification {
	case models.SpecificationConventionalEmojiCommits:
		for _, e := range cfg.ConventionalCommitEmojis {
			labels = append(labels, e.String())
		}
	default:
		for _, g := range cfg.Gitmojis {
			labels = append(labels, g.String())
		}
	}

	opts := make([]huh.Option[int], 0, len(labels))
	for i, label := range labels {
		opts = append(opts, huh.NewOption(label, i))
	}
	return opts
}

func initialScope(spec models.CommitSpecification) string {
	if spec == models.SpecificationDefault {
		return defaultScope
	}
	return ""
}

// scopeValue keeps whatever separator the user typed after the scope; a
// blank answer means no scope.
func scopeValue(scope string) string {
	if strings.TrimSpace(scope) == "" {
		return ""
	}
	return scope
}

func selectionAt(cfg models.GlobalConfig, idx int, scope, title, description string) commit.Selection {
	switch cfg.Specification {
	case models.SpecificationConventionalEmojiCommits:
		return commit.SelectionFromConventional(cfg.ConventionalCommitEmojis[idx], scope, title, description)
	default:
		return commit.SelectionFromGitmoji(cfg.Gitmojis[idx], scope, title, description)
	}
}
