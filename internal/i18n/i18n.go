package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations loads the built-in English messages plus any
// active.<lang>.toml file found in localesDir.
func NewTranslations(lang string, localesDir string) (*Translations, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "active.en.toml")

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: newLocalizer(bundle, tag.String()),
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = newLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

// newLocalizer falls back to English for messages a locale file lacks.
func newLocalizer(bundle *i18n.Bundle, lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang, language.English.String())
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if count > 0 {
		cfg.PluralCount = count
	}

	localized, err := t.localize.Localize(cfg)
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
app_usage = "Compose git commit messages with gitmojis"
app_description = "Pick an emoji from the gitmoji catalog (or the conventional emoji commits one) and commit with a well formed title"
flag_debug_usage = "Print debug logs"
flag_verbose_usage = "Print informative logs"
flag_config_dir_usage = "Directory holding gitmojis.toml"
factory_already_registered = "Command {{.FactoryName}} is already registered"

init_usage = "Configure gitmoji and fetch the emoji catalog"
init_default_flag = "Use the default configuration without prompting"
commit_usage = "Interactively commit using the prompts"
commit_all_flag = "Stage all tracked changes before committing"
commit_amend_flag = "Amend the previous commit"
list_usage = "List all the available emojis"
search_usage = "Search an emoji by code, name or description"
search_args = "<text>"
update_usage = "Refresh the emoji catalog, optionally from a new url"
update_args = "[url]"
config_usage = "Inspect the configuration"
config_show_usage = "Show the resolved configuration"
hook_usage = "Git hook helpers"
hook_apply_usage = "Write the commit message to the file git passes to prepare-commit-msg"
hook_apply_args = "<dest> [source]"

loading_catalog = "Loading gitmojis from {{.URL}}"
loading_catalog_stored = "Loading gitmojis from the configured url"
no_changes = "No change to commit"
no_match = "No emoji matches {{.Text}}"
no_config = "No configuration found, try run 'gitmoji init' to fetch a configuration"
cannot_update = "Configuration not updated, maybe check the update url '{{.URL}}'"

[catalog_updated]
one = "{{.Count}} emoji fetched"
other = "{{.Count}} emojis fetched"

[prompt]
auto_add = "Enable automatic \"git add .\""
specification = "Select the commit specification"
format = "Select how emojis should be used in commits"
signed = "Enable signed commits"
scope_enabled = "Enable scope prompt"
update_url = "Set gitmojis api url"
pick_emoji = "Pick your flavor"
scope = "Enter the scope of current changes:"
title = "Enter the commit title"
title_required = "The commit title cannot be empty"
body = "Enter the commit message:"

[config_show]
title = "Current configuration"
path = "Config file"
auto_add = "Automatic git add"
specification = "Specification"
format = "Emoji format"
signed = "Signed commits"
scope = "Scope prompt"
update_url = "Update url"
last_update = "Last update"
never = "never"
catalog_size = "Emojis in catalog"

[ui_error]
try_suggestion = "💡 Try: "
details = "Details"
`
