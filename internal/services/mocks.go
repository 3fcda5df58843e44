package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/gitmoji/internal/commit"
	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockConfigStore struct {
		mock.Mock
	}

	MockCatalogRefresher struct {
		mock.Mock
	}

	MockPrompter struct {
		mock.Mock
	}
)

func (m *MockGitService) HasStagedChanges(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockGitService) ConfigValue(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) Commit(ctx context.Context, opts models.CommitOptions) error {
	args := m.Called(ctx, opts)
	return args.Error(0)
}

func (m *MockConfigStore) Load(ctx context.Context, git config.GitConfigReader) (models.GlobalConfig, error) {
	args := m.Called(ctx, git)
	return args.Get(0).(models.GlobalConfig), args.Error(1)
}

func (m *MockConfigStore) LoadGlobal(ctx context.Context) (models.GlobalConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.GlobalConfig), args.Error(1)
}

func (m *MockConfigStore) SaveGlobal(ctx context.Context, cfg models.GlobalConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockConfigStore) LocateConfigPath() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockCatalogRefresher) Refresh(ctx context.Context, cfg models.GlobalConfig) (models.GlobalConfig, error) {
	args := m.Called(ctx, cfg)
	return args.Get(0).(models.GlobalConfig), args.Error(1)
}

func (m *MockPrompter) AskConfig(ctx context.Context) (models.GlobalConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.GlobalConfig), args.Error(1)
}

func (m *MockPrompter) AskSelection(ctx context.Context, cfg models.GlobalConfig) (commit.Selection, error) {
	args := m.Called(ctx, cfg)
	return args.Get(0).(commit.Selection), args.Error(1)
}
