package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/thomas-vilte/gitmoji/internal/catalog"
	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ports"
)

// ConfigService creates, refreshes and reads the gitmoji configuration.
type ConfigService struct {
	store     ports.ConfigStore
	git       config.GitConfigReader
	refresher ports.CatalogRefresher
	prompter  ports.Prompter
}

func NewConfigService(store ports.ConfigStore, git config.GitConfigReader, refresher ports.CatalogRefresher, prompter ports.Prompter) *ConfigService {
	return &ConfigService{
		store:     store,
		git:       git,
		refresher: refresher,
		prompter:  prompter,
	}
}

// Configure builds a new configuration, either the default one or from the
// user's answers. Nothing is persisted until Fetch succeeds.
func (s *ConfigService) Configure(ctx context.Context, useDefault bool) (models.GlobalConfig, error) {
	if useDefault {
		return models.DefaultGlobalConfig(), nil
	}
	return s.prompter.AskConfig(ctx)
}

// Fetch downloads the catalog of cfg and persists the result.
func (s *ConfigService) Fetch(ctx context.Context, cfg models.GlobalConfig) (models.GlobalConfig, error) {
	return s.refresh(ctx, cfg)
}

// Update refreshes the catalog of the global configuration. A non-empty
// url replaces the stored update URL first. The local override is never
// read here, so it cannot end up in the global file.
func (s *ConfigService) Update(ctx context.Context, url string) (models.GlobalConfig, error) {
	if url != "" {
		if err := config.ValidateURL(url); err != nil {
			return models.GlobalConfig{}, err
		}
	}

	cfg, err := s.store.LoadGlobal(ctx)
	if stderrors.Is(err, errors.ErrMissingConfig) {
		logger.Debug(ctx, "no global config, updating the default one", "error", err)
		cfg, err = models.DefaultGlobalConfig(), nil
	}
	if err != nil {
		return models.GlobalConfig{}, err
	}
	if url != "" {
		cfg.UpdateURL = url
	}
	return s.refresh(ctx, cfg)
}

// Load returns the merged configuration.
func (s *ConfigService) Load(ctx context.Context) (models.GlobalConfig, error) {
	return s.store.Load(ctx, s.git)
}

// Path returns the location of the global configuration file.
func (s *ConfigService) Path() (string, error) {
	return s.store.LocateConfigPath()
}

// Search returns the configuration with its catalogs narrowed to the
// entries matching text.
func (s *ConfigService) Search(ctx context.Context, text string) (models.GlobalConfig, error) {
	cfg, err := s.store.Load(ctx, s.git)
	if err != nil {
		return models.GlobalConfig{}, err
	}
	cfg.Gitmojis = catalog.Filter(cfg.Gitmojis, text)
	cfg.ConventionalCommitEmojis = catalog.FilterConventional(cfg.ConventionalCommitEmojis, text)
	return cfg, nil
}

func (s *ConfigService) refresh(ctx context.Context, cfg models.GlobalConfig) (models.GlobalConfig, error) {
	logger.Info(ctx, "loading catalog", "url", cfg.UpdateURL)

	updated, err := s.refresher.Refresh(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "catalog refresh failed", err, "url", cfg.UpdateURL)
		return models.GlobalConfig{}, errors.ErrCannotUpdate.
			WithError(err).
			WithContext("url", cfg.UpdateURL).
			WithSuggestion(fmt.Sprintf("Check that %s is reachable, then run `gitmoji update`", cfg.UpdateURL))
	}
	return updated, nil
}
