package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

const (
	AppName            = "gitmoji"
	ConfigFileName     = "gitmojis.toml"
	LocalConfigFile    = "./.gitmojis.toml"
	GitConfigLocalFile = "gitmoji.file"
	ConfigDirEnv       = "GITMOJI_CONFIG_DIR"
)

// GitConfigReader reads a single git-config value. An unset key yields "".
type GitConfigReader interface {
	ConfigValue(ctx context.Context, key string) (string, error)
}

// Store owns the persisted global configuration file and resolves the
// optional local override.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir falls back to
// $GITMOJI_CONFIG_DIR, then to the platform config directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LocateConfigPath returns the global config file path, creating its
// parent directory if needed.
func (s *Store) LocateConfigPath() (string, error) {
	dir, err := s.Dir()
	if err != nil {
		return "", errors.ErrConfigDir.WithError(err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.ErrConfigDir.WithError(err).WithContext("dir", dir)
	}

	return filepath.Join(dir, ConfigFileName), nil
}

// SetDir points the store at dir. Used once the command line is parsed.
func (s *Store) SetDir(dir string) {
	s.dir = dir
}

// Dir resolves the configuration directory without creating it.
func (s *Store) Dir() (string, error) {
	if s.dir != "" {
		return s.dir, nil
	}
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot define project dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

func (s *Store) LoadGlobal(ctx context.Context) (models.GlobalConfig, error) {
	path, err := s.LocateConfigPath()
	if err != nil {
		return models.GlobalConfig{}, err
	}

	logger.Info(ctx, "reading config file", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return models.GlobalConfig{}, errors.ErrMissingConfig.WithError(err).WithContext("path", path)
	}

	cfg, err := decodeGlobal(data)
	if err != nil {
		return models.GlobalConfig{}, errors.ErrParseConfig.WithError(err).WithContext("path", path)
	}
	return cfg, nil
}

// decodeGlobal starts from the defaults so a file missing some keys still
// yields a complete config.
func decodeGlobal(data []byte) (models.GlobalConfig, error) {
	cfg := models.DefaultGlobalConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return models.GlobalConfig{}, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return models.GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobal writes the config next to its destination and renames it into
// place, so a failed write never truncates the previous file.
func (s *Store) SaveGlobal(ctx context.Context, cfg models.GlobalConfig) error {
	path, err := s.LocateConfigPath()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.ErrWriteConfig.WithError(err).WithContext("path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".gitmojis-*.toml")
	if err != nil {
		return errors.ErrWriteConfig.WithError(err).WithContext("path", path)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return errors.ErrWriteConfig.WithError(err).WithContext("path", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.ErrWriteConfig.WithError(err).WithContext("path", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.ErrWriteConfig.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "config file updated", "path", path)
	return nil
}

// LocalConfigPath resolves the override file: the gitmoji.file git-config
// entry when set, ./.gitmojis.toml otherwise.
func LocalConfigPath(ctx context.Context, git GitConfigReader) string {
	if git == nil {
		return LocalConfigFile
	}

	path, err := git.ConfigValue(ctx, GitConfigLocalFile)
	if err != nil {
		logger.Debug(ctx, "cannot read git config, using default local file", "key", GitConfigLocalFile, "error", err)
		return LocalConfigFile
	}
	if path == "" {
		return LocalConfigFile
	}
	return path
}

// LoadLocalOverride reads the repository override. A missing file is not an
// error: it yields an empty override.
func (s *Store) LoadLocalOverride(ctx context.Context, git GitConfigReader) (models.LocalOverride, error) {
	path := LocalConfigPath(ctx, git)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Warn(ctx, "cannot read local config, file does not exist", "path", path)
		return models.LocalOverride{}, nil
	}
	if err != nil {
		return models.LocalOverride{}, errors.ErrReadLocalConfig.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "reading local config file", "path", path)
	var local models.LocalOverride
	if _, err := toml.Decode(string(data), &local); err != nil {
		return models.LocalOverride{}, errors.ErrParseLocalConfig.WithError(err).WithContext("path", path)
	}
	return local, nil
}

// Load returns the global config with the local override applied.
func (s *Store) Load(ctx context.Context, git GitConfigReader) (models.GlobalConfig, error) {
	global, err := s.LoadGlobal(ctx)
	if err != nil {
		return models.GlobalConfig{}, err
	}

	local, err := s.LoadLocalOverride(ctx, git)
	if err != nil {
		return models.GlobalConfig{}, err
	}

	return Merge(global, local), nil
}
