package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

type fakeGitConfig struct {
	values map[string]string
	err    error
}

func (f fakeGitConfig) ConfigValue(_ context.Context, key string) (string, error) {
	return f.values[key], f.err
}

func sampleConfig() models.GlobalConfig {
	cfg := models.NewGlobalConfig(true, models.SpecificationDefault, models.FormatUseEmoji, false, true, models.DefaultURL)
	at := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
	return cfg.WithGitmojis([]models.Gitmoji{
		models.NewGitmoji("🚀", ":rocket:", models.Ptr("rocket"), models.Ptr("Deploy stuff.")),
		models.NewGitmoji("🎨", ":art:", nil, nil),
	}, at)
}

func TestStore_LocateConfigPath(t *testing.T) {
	t.Run("should create the directory under the explicit root", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "gitmoji")
		store := NewStore(dir)

		path, err := store.LocateConfigPath()

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ConfigFileName), path)
		assert.DirExists(t, dir)
	})

	t.Run("should honour the environment override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigDirEnv, dir)

		path, err := NewStore("").LocateConfigPath()

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ConfigFileName), path)
	})

	t.Run("should prefer SetDir over the environment", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, t.TempDir())
		dir := t.TempDir()
		store := NewStore("")
		store.SetDir(dir)

		got, err := store.Dir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)

		path, err := store.LocateConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ConfigFileName), path)
	})

	t.Run("should fail with a storage error when the directory cannot be created", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := NewStore(filepath.Join(file, "gitmoji")).LocateConfigPath()

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeStorage))
	})
}

func TestStore_LoadGlobal(t *testing.T) {
	ctx := context.Background()

	t.Run("should report a missing config", func(t *testing.T) {
		_, err := NewStore(t.TempDir()).LoadGlobal(ctx)

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrMissingConfig))
	})

	t.Run("should report malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("auto_add = [nope"), 0644))

		_, err := NewStore(dir).LoadGlobal(ctx)

		assert.True(t, stderrors.Is(err, errors.ErrParseConfig))
	})

	t.Run("should reject an unknown specification tag", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`specification = "Angular"`), 0644))

		_, err := NewStore(dir).LoadGlobal(ctx)

		assert.True(t, stderrors.Is(err, errors.ErrParseConfig))
	})

	t.Run("should reject an invalid update url", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`update_url = "not a url"`), 0644))

		_, err := NewStore(dir).LoadGlobal(ctx)

		assert.True(t, stderrors.Is(err, errors.ErrParseConfig))
	})

	t.Run("should fill missing keys with defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `
auto_add = true
format = "UseEmoji"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

		cfg, err := NewStore(dir).LoadGlobal(ctx)

		require.NoError(t, err)
		assert.True(t, cfg.AutoAdd)
		assert.Equal(t, models.FormatUseEmoji, cfg.Format)
		assert.Equal(t, models.SpecificationDefault, cfg.Specification)
		assert.Equal(t, models.DefaultURL, cfg.UpdateURL)
		assert.Nil(t, cfg.LastUpdate)
	})

	t.Run("should read the documented file layout", func(t *testing.T) {
		dir := t.TempDir()
		content := `
auto_add = false
specification = "ConventionalEmojiCommits"
format = "UseCode"
signed = true
scope = true
update_url = "https://example.com/types.json"
last_update = 2024-01-02T03:04:05Z

[[conventional_commit_emojis]]
emoji = "✨"
code = ":sparkles:"
type = "feat"
description = "A new feature"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

		cfg, err := NewStore(dir).LoadGlobal(ctx)

		require.NoError(t, err)
		assert.Equal(t, models.SpecificationConventionalEmojiCommits, cfg.Specification)
		assert.True(t, cfg.Signed)
		require.NotNil(t, cfg.LastUpdate)
		assert.True(t, cfg.LastUpdate.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
		require.Len(t, cfg.ConventionalCommitEmojis, 1)
		assert.Equal(t, "feat", cfg.ConventionalCommitEmojis[0].Type)
		assert.Equal(t, "A new feature", *cfg.ConventionalCommitEmojis[0].Description)
	})
}

func TestStore_SaveGlobal(t *testing.T) {
	ctx := context.Background()

	t.Run("should round trip through the file", func(t *testing.T) {
		store := NewStore(t.TempDir())
		cfg := sampleConfig()

		require.NoError(t, store.SaveGlobal(ctx, cfg))
		loaded, err := store.LoadGlobal(ctx)

		require.NoError(t, err)
		require.NotNil(t, loaded.LastUpdate)
		assert.True(t, cfg.LastUpdate.Equal(*loaded.LastUpdate))
		loaded.LastUpdate, cfg.LastUpdate = nil, nil
		assert.Equal(t, cfg, loaded)
	})

	t.Run("should write the enum tags", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, NewStore(dir).SaveGlobal(ctx, models.DefaultGlobalConfig()))

		data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))

		require.NoError(t, err)
		assert.Contains(t, string(data), `specification = "Default"`)
		assert.Contains(t, string(data), `format = "UseCode"`)
		assert.Contains(t, string(data), `auto_add = false`)
		assert.NotContains(t, string(data), "last_update")
	})

	t.Run("should keep the previous file when encoding fails", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.SaveGlobal(ctx, sampleConfig()))
		before, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
		require.NoError(t, err)

		broken := sampleConfig()
		broken.Specification = "Angular"
		err = store.SaveGlobal(ctx, broken)

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrWriteConfig))
		after, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
		require.NoError(t, err)
		assert.Equal(t, before, after)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp file may be left behind")
	})
}

func TestStore_LoadLocalOverride(t *testing.T) {
	ctx := context.Background()

	t.Run("should return an empty override when the file does not exist", func(t *testing.T) {
		t.Chdir(t.TempDir())

		local, err := NewStore(t.TempDir()).LoadLocalOverride(ctx, fakeGitConfig{})

		require.NoError(t, err)
		assert.Equal(t, models.LocalOverride{}, local)
	})

	t.Run("should read the default relative file", func(t *testing.T) {
		repo := t.TempDir()
		t.Chdir(repo)
		require.NoError(t, os.WriteFile(filepath.Join(repo, ".gitmojis.toml"), []byte("signed = true\n"), 0644))

		local, err := NewStore(t.TempDir()).LoadLocalOverride(ctx, nil)

		require.NoError(t, err)
		require.NotNil(t, local.Signed)
		assert.True(t, *local.Signed)
		assert.Nil(t, local.AutoAdd)
		assert.Nil(t, local.Gitmojis)
	})

	t.Run("should follow the gitmoji.file git config entry", func(t *testing.T) {
		t.Chdir(t.TempDir())
		path := filepath.Join(t.TempDir(), "team-gitmojis.toml")
		content := `
format = "UseEmoji"

[[gitmojis]]
emoji = "🐛"
code = ":bug:"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		git := fakeGitConfig{values: map[string]string{GitConfigLocalFile: path}}

		local, err := NewStore(t.TempDir()).LoadLocalOverride(ctx, git)

		require.NoError(t, err)
		require.NotNil(t, local.Format)
		assert.Equal(t, models.FormatUseEmoji, *local.Format)
		require.NotNil(t, local.Gitmojis)
		assert.Equal(t, []models.Gitmoji{models.NewGitmoji("🐛", ":bug:", nil, nil)}, *local.Gitmojis)
	})

	t.Run("should fall back to the default file when git config fails", func(t *testing.T) {
		repo := t.TempDir()
		t.Chdir(repo)
		require.NoError(t, os.WriteFile(filepath.Join(repo, ".gitmojis.toml"), []byte("auto_add = true\n"), 0644))
		git := fakeGitConfig{err: stderrors.New("not a git repository")}

		local, err := NewStore(t.TempDir()).LoadLocalOverride(ctx, git)

		require.NoError(t, err)
		require.NotNil(t, local.AutoAdd)
		assert.True(t, *local.AutoAdd)
	})

	t.Run("should propagate malformed content as a parse error", func(t *testing.T) {
		repo := t.TempDir()
		t.Chdir(repo)
		require.NoError(t, os.WriteFile(filepath.Join(repo, ".gitmojis.toml"), []byte(`format = "Big"`), 0644))

		_, err := NewStore(t.TempDir()).LoadLocalOverride(ctx, nil)

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrParseLocalConfig))
		assert.True(t, errors.IsType(err, errors.TypeParse))
	})
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("should merge the local override over the global config", func(t *testing.T) {
		repo := t.TempDir()
		t.Chdir(repo)
		require.NoError(t, os.WriteFile(filepath.Join(repo, ".gitmojis.toml"), []byte("auto_add = false\nscope = false\n"), 0644))
		store := NewStore(t.TempDir())
		require.NoError(t, store.SaveGlobal(ctx, sampleConfig()))

		cfg, err := store.Load(ctx, nil)

		require.NoError(t, err)
		assert.False(t, cfg.AutoAdd)
		assert.True(t, cfg.Scope, "scope is never taken from the override")
		assert.Len(t, cfg.Gitmojis, 2)
	})

	t.Run("should surface a missing global config", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := NewStore(t.TempDir()).Load(ctx, nil)

		assert.True(t, stderrors.Is(err, errors.ErrMissingConfig))
	})
}
