package models

import (
	"bytes"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitmoji_String(t *testing.T) {
	t.Run("with every field", func(t *testing.T) {
		g := NewGitmoji("🚀", ":rocket:", Ptr("rocket"), Ptr("Deploy stuff."))
		assert.Equal(t, "🚀 :rocket: rocket - Deploy stuff.", g.String())
	})

	t.Run("without optional fields", func(t *testing.T) {
		g := NewGitmoji("🎨", ":art:", nil, nil)
		assert.Equal(t, "🎨 :art:  - ", g.String())
	})
}

func TestConventionalEmoji_String(t *testing.T) {
	c := NewConventionalEmoji("✨", ":sparkles:", "feat", Ptr("A new feature"))
	assert.Equal(t, "✨ feat - A new feature", c.String())
}

func TestCommitSpecification_UnmarshalText(t *testing.T) {
	var spec CommitSpecification

	require.NoError(t, spec.UnmarshalText([]byte("ConventionalEmojiCommits")))
	assert.Equal(t, SpecificationConventionalEmojiCommits, spec)

	assert.Error(t, spec.UnmarshalText([]byte("default")), "tags are case sensitive")
	assert.Equal(t, SpecificationConventionalEmojiCommits, spec, "a failed decode keeps the previous value")
}

func TestEmojiFormat_UnmarshalText(t *testing.T) {
	var format EmojiFormat

	require.NoError(t, format.UnmarshalText([]byte("UseEmoji")))
	assert.Equal(t, FormatUseEmoji, format)
	assert.Error(t, format.UnmarshalText([]byte("emoji")))
}

func TestNewGlobalConfig(t *testing.T) {
	t.Run("should force scope for conventional emoji commits", func(t *testing.T) {
		cfg := NewGlobalConfig(false, SpecificationConventionalEmojiCommits, FormatUseCode, false, false, ConventionalEmojiCommitsDefaultURL)
		assert.True(t, cfg.Scope)
	})

	t.Run("should keep the scope choice for the default specification", func(t *testing.T) {
		cfg := NewGlobalConfig(false, SpecificationDefault, FormatUseCode, false, false, DefaultURL)
		assert.False(t, cfg.Scope)
		assert.Nil(t, cfg.LastUpdate)
	})
}

func TestDefaultUpdateURL(t *testing.T) {
	assert.Equal(t, DefaultURL, DefaultUpdateURL(SpecificationDefault))
	assert.Equal(t, ConventionalEmojiCommitsDefaultURL, DefaultUpdateURL(SpecificationConventionalEmojiCommits))
}

func TestGlobalConfig_WithCatalog(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	original := DefaultGlobalConfig()

	updated := original.WithGitmojis([]Gitmoji{NewGitmoji("🎨", ":art:", nil, nil)}, at)

	assert.Empty(t, original.Gitmojis)
	assert.Nil(t, original.LastUpdate)
	require.NotNil(t, updated.LastUpdate)
	assert.True(t, updated.LastUpdate.Equal(at))
	assert.Equal(t, time.UTC, updated.LastUpdate.Location())
	assert.Equal(t, 1, updated.ActiveCatalogSize())

	conventional := original.WithConventionalEmojis([]ConventionalEmoji{{Type: "feat"}, {Type: "fix"}}, at)
	conventional.Specification = SpecificationConventionalEmojiCommits
	assert.Equal(t, 2, conventional.ActiveCatalogSize())
}

func TestGitmoji_TOMLRoundTrip(t *testing.T) {
	gitmojis := []Gitmoji{
		NewGitmoji("🚀", "rocket", Ptr("Initialize"), Ptr("Bla bla")),
		NewGitmoji("🎨", ":art:", nil, nil),
	}

	for _, g := range gitmojis {
		var buf bytes.Buffer
		require.NoError(t, toml.NewEncoder(&buf).Encode(g))

		var decoded Gitmoji
		_, err := toml.Decode(buf.String(), &decoded)
		require.NoError(t, err)

		assert.Equal(t, g, decoded)
	}
}

func TestLocalOverride_TOMLDecode(t *testing.T) {
	content := `
auto_add = true
specification = "ConventionalEmojiCommits"
scope = false
`
	var local LocalOverride
	_, err := toml.Decode(content, &local)

	require.NoError(t, err)
	assert.Equal(t, Ptr(true), local.AutoAdd)
	assert.Equal(t, Ptr(SpecificationConventionalEmojiCommits), local.Specification)
	assert.Equal(t, Ptr(false), local.Scope)
	assert.Nil(t, local.Format)
	assert.Nil(t, local.Signed)
	assert.Nil(t, local.Gitmojis)
	assert.Nil(t, local.ConventionalCommitEmojis)
}
