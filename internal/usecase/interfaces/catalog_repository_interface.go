package interfaces

import (
	"context"

	"bitacora_materiales/internal/domain/entities"
)

// ICatalogRepository abstracts the per-origin material catalogs.
//
// Search must only return active items whose code, description or simple
// name contains term (case-insensitive), at most limit of them.

type ICatalogRepository interface {
	Search(ctx context.Context, origin entities.Origin, term string, limit int) ([]entities.CatalogItem, error)
	UpsertBatch(ctx context.Context, origin entities.Origin, items []entities.CatalogItem) error
}
