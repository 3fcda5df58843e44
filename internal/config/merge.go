package config

import (
	"slices"

	"github.com/thomas-vilte/gitmoji/internal/models"
)

// Merge applies a local override on top of the global config. Present local
// fields replace the global ones wholesale, catalogs included. The override's
// specification and scope are not applied.
func Merge(global models.GlobalConfig, local models.LocalOverride) models.GlobalConfig {
	merged := global
	merged.Gitmojis = slices.Clone(global.Gitmojis)
	merged.ConventionalCommitEmojis = slices.Clone(global.ConventionalCommitEmojis)

	if local.AutoAdd != nil {
		merged.AutoAdd = *local.AutoAdd
	}
	if local.Format != nil {
		merged.Format = *local.Format
	}
	if local.Signed != nil {
		merged.Signed = *local.Signed
	}
	if local.Gitmojis != nil {
		merged.Gitmojis = slices.Clone(*local.Gitmojis)
	}
	if local.ConventionalCommitEmojis != nil {
		merged.ConventionalCommitEmojis = slices.Clone(*local.ConventionalCommitEmojis)
	}

	return merged
}
