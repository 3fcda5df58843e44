package ports

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/commit"
	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

// GitService is the subset of git used by the commit workflow.
type GitService interface {
	config.GitConfigReader
	// HasStagedChanges reports whether the index differs from HEAD.
	HasStagedChanges(ctx context.Context) bool
	// Commit runs git commit with the given options.
	Commit(ctx context.Context, opts models.CommitOptions) error
}

// ConfigStore loads and persists the gitmoji configuration.
type ConfigStore interface {
	// Load returns the global configuration merged with the local override.
	Load(ctx context.Context, git config.GitConfigReader) (models.GlobalConfig, error)
	// LoadGlobal returns the persisted global configuration alone.
	LoadGlobal(ctx context.Context) (models.GlobalConfig, error)
	SaveGlobal(ctx context.Context, cfg models.GlobalConfig) error
	LocateConfigPath() (string, error)
}

// CatalogRefresher fetches the remote catalog and persists the result.
type CatalogRefresher interface {
	Refresh(ctx context.Context, cfg models.GlobalConfig) (models.GlobalConfig, error)
}

// Prompter collects interactive answers from the user.
type Prompter interface {
	AskConfig(ctx context.Context) (models.GlobalConfig, error)
	AskSelection(ctx context.Context, cfg models.GlobalConfig) (commit.Selection, error)
}

// MessageFileWriter prepends a commit message to a file.
type MessageFileWriter func(path string, msg commit.Message) error
