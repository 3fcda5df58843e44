package catalog

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/models"
)

// CatalogService is the part of the config service the catalog commands use.
type CatalogService interface {
	Load(ctx context.Context) (models.GlobalConfig, error)
	Search(ctx context.Context, text string) (models.GlobalConfig, error)
	Update(ctx context.Context, url string) (models.GlobalConfig, error)
}
