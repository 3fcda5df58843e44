package models

import "time"

const (
	DefaultURL                         = "https://gitmoji.dev/api/gitmojis"
	ConventionalEmojiCommitsDefaultURL = "https://gist.githubusercontent.com/mluettecke/3f84a6a5c1c53ff6412828e601cd60ca/raw/9390c31c733ded384f65d37e063e041075016cdc/conventional-emoji-commits-types.json"
)

const (
	defaultAutoAdd       = false
	defaultSigned        = false
	defaultScope         = false
	defaultSpecification = SpecificationDefault
	defaultFormat        = FormatUseCode
)

type (
	// GlobalConfig is the persisted configuration, the single source of truth.
	GlobalConfig struct {
		AutoAdd                  bool                `toml:"auto_add"`
		Specification            CommitSpecification `toml:"specification"`
		Format                   EmojiFormat         `toml:"format"`
		Signed                   bool                `toml:"signed"`
		Scope                    bool                `toml:"scope"`
		UpdateURL                string              `toml:"update_url" validate:"required,url"`
		LastUpdate               *time.Time          `toml:"last_update,omitempty"`
		Gitmojis                 []Gitmoji           `toml:"gitmojis"`
		ConventionalCommitEmojis []ConventionalEmoji `toml:"conventional_commit_emojis"`
	}

	// LocalOverride is a repository scoped partial configuration. A nil field
	// defers to the global value.
	LocalOverride struct {
		AutoAdd                  *bool                `toml:"auto_add"`
		Specification            *CommitSpecification `toml:"specification"`
		Format                   *EmojiFormat         `toml:"format"`
		Signed                   *bool                `toml:"signed"`
		Scope                    *bool                `toml:"scope"`
		Gitmojis                 *[]Gitmoji           `toml:"gitmojis"`
		ConventionalCommitEmojis *[]ConventionalEmoji `toml:"conventional_commit_emojis"`
	}
)

// NewGlobalConfig builds a config without catalog. The conventional emoji
// commits grammar always carries a scope, so scope is forced on for it.
func NewGlobalConfig(autoAdd bool, spec CommitSpecification, format EmojiFormat, signed, scope bool, updateURL string) GlobalConfig {
	if spec == SpecificationConventionalEmojiCommits {
		scope = true
	}
	return GlobalConfig{
		AutoAdd:                  autoAdd,
		Specification:            spec,
		Format:                   format,
		Signed:                   signed,
		Scope:                    scope,
		UpdateURL:                updateURL,
		Gitmojis:                 []Gitmoji{},
		ConventionalCommitEmojis: []ConventionalEmoji{},
	}
}

func DefaultGlobalConfig() GlobalConfig {
	return NewGlobalConfig(defaultAutoAdd, defaultSpecification, defaultFormat, defaultSigned, defaultScope, DefaultURL)
}

// DefaultUpdateURL returns the catalog endpoint used when the user keeps the default.
func DefaultUpdateURL(spec CommitSpecification) string {
	switch spec {
	case SpecificationConventionalEmojiCommits:
		return ConventionalEmojiCommitsDefaultURL
	default:
		return DefaultURL
	}
}

func (c GlobalConfig) ActiveCatalogSize() int {
	switch c.Specification {
	case SpecificationConventionalEmojiCommits:
		return len(c.ConventionalCommitEmojis)
	default:
		return len(c.Gitmojis)
	}
}

// WithGitmojis returns a copy with the default catalog replaced and the
// refresh time stamped.
func (c GlobalConfig) WithGitmojis(gitmojis []Gitmoji, at time.Time) GlobalConfig {
	at = at.UTC()
	c.Gitmojis = gitmojis
	c.LastUpdate = &at
	return c
}

// WithConventionalEmojis is the conventional counterpart of WithGitmojis.
func (c GlobalConfig) WithConventionalEmojis(emojis []ConventionalEmoji, at time.Time) GlobalConfig {
	at = at.UTC()
	c.ConventionalCommitEmojis = emojis
	c.LastUpdate = &at
	return c
}
