package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := t.TempDir()
	t.Chdir(dir)

	runGit(t, "init", "--quiet")
	runGit(t, "config", "user.email", "test@example.com")
	runGit(t, "config", "user.name", "Test User")
	runGit(t, "config", "commit.gpgsign", "false")
	return dir
}

func runGit(t *testing.T, args ...string) string {
	t.Helper()
	output, err := exec.Command("git", args...).CombinedOutput()
	require.NoError(t, err, string(output))
	return strings.TrimSpace(string(output))
}

func newTestService() (*GitService, *bytes.Buffer) {
	var stderr bytes.Buffer
	return &GitService{stdin: strings.NewReader(""), stdout: &bytes.Buffer{}, stderr: &stderr}, &stderr
}

func TestCommitArgs(t *testing.T) {
	tests := []struct {
		name string
		opts models.CommitOptions
		want []string
	}{
		{
			name: "title only",
			opts: models.CommitOptions{Title: ":art: tidy"},
			want: []string{"commit", "--message", ":art: tidy"},
		},
		{
			name: "every flag and a description",
			opts: models.CommitOptions{All: true, Amend: true, Signed: true, Title: ":bug: fix", Description: "details"},
			want: []string{"commit", "--all", "--amend", "--gpg-sign", "--message", ":bug: fix", "--message", "details"},
		},
		{
			name: "signed without description",
			opts: models.CommitOptions{Signed: true, Title: "✨feat: x"},
			want: []string{"commit", "--gpg-sign", "--message", "✨feat: x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommitArgs(tt.opts))
		})
	}
}

func TestGitService(t *testing.T) {
	ctx := context.Background()

	t.Run("HasStagedChanges", func(t *testing.T) {
		setupTestRepo(t)
		service, _ := newTestService()

		assert.False(t, service.HasStagedChanges(ctx))

		require.NoError(t, os.WriteFile("test.txt", []byte("test content"), 0644))
		runGit(t, "add", "test.txt")

		assert.True(t, service.HasStagedChanges(ctx))
	})

	t.Run("ConfigValue", func(t *testing.T) {
		setupTestRepo(t)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		service, _ := newTestService()

		value, err := service.ConfigValue(ctx, "gitmoji.file")
		require.NoError(t, err)
		assert.Empty(t, value)

		runGit(t, "config", "gitmoji.file", "config/gitmojis.toml")

		value, err = service.ConfigValue(ctx, "gitmoji.file")
		require.NoError(t, err)
		assert.Equal(t, "config/gitmojis.toml", value)
	})

	t.Run("ConfigValue reads the repository config from a subdirectory", func(t *testing.T) {
		repo := setupTestRepo(t)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		runGit(t, "config", "--local", "gitmoji.file", ".config/gitmojis.toml")

		sub := filepath.Join(repo, "pkg", "nested")
		require.NoError(t, os.MkdirAll(sub, 0755))
		t.Chdir(sub)
		service, _ := newTestService()

		value, err := service.ConfigValue(ctx, "gitmoji.file")

		require.NoError(t, err)
		assert.Equal(t, ".config/gitmojis.toml", value)
	})

	t.Run("ConfigValue outside a repository", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git is not installed")
		}
		t.Chdir(t.TempDir())
		t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())
		service, _ := newTestService()

		_, err := service.ConfigValue(ctx, "gitmoji.file")

		assert.True(t, stderrors.Is(err, errors.ErrGetRepoRoot))
	})

	t.Run("Commit", func(t *testing.T) {
		setupTestRepo(t)
		service, _ := newTestService()
		require.NoError(t, os.WriteFile("test.txt", []byte("test content"), 0644))
		runGit(t, "add", "test.txt")

		err := service.Commit(ctx, models.CommitOptions{Title: ":tada: initial commit", Description: "First one"})

		require.NoError(t, err)
		assert.Equal(t, ":tada: initial commit\n\nFirst one", runGit(t, "log", "-1", "--format=%B"))
		assert.False(t, service.HasStagedChanges(ctx))
	})

	t.Run("Commit with all stages tracked changes", func(t *testing.T) {
		setupTestRepo(t)
		service, _ := newTestService()
		require.NoError(t, os.WriteFile("test.txt", []byte("v1"), 0644))
		runGit(t, "add", "test.txt")
		require.NoError(t, service.Commit(ctx, models.CommitOptions{Title: ":tada: v1"}))
		require.NoError(t, os.WriteFile("test.txt", []byte("v2"), 0644))

		err := service.Commit(ctx, models.CommitOptions{All: true, Title: ":memo: v2"})

		require.NoError(t, err)
		assert.Equal(t, ":memo: v2", runGit(t, "log", "-1", "--format=%s"))
	})

	t.Run("Commit failure carries stderr", func(t *testing.T) {
		setupTestRepo(t)
		service, stderr := newTestService()

		err := service.Commit(ctx, models.CommitOptions{Title: ":art: nothing"})

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrCreateCommit))
		var appErr *errors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, strings.TrimSpace(stderr.String()), appErr.Context["stderr"])
	})
}
