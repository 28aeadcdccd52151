package interfaces

import (
	"context"
	"errors"

	"bitacora_materiales/internal/domain/entities"
)

// ErrDuplicateEntry is returned when an insert collides with an existing id.
var ErrDuplicateEntry = errors.New("duplicate material entry")

// IMaterialRepository abstracts persistence of material entries.
//
// The materials service must be able to:
//   - insert a single entry (single-selection page)
//   - insert a whole cart atomically (cart page)
//   - list the entries of a bitácora, newest first
//   - delete an entry by id
//
// GetByID returns a zero entry (empty ID) when nothing matches.

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.MaterialEntry) (entities.MaterialEntry, error)
	CreateBatch(ctx context.Context, lines []entities.MaterialEntry) ([]entities.MaterialEntry, error)
	GetByID(ctx context.Context, id string) (entities.MaterialEntry, error)
	ListByBitacoraID(ctx context.Context, bitacoraID string) ([]entities.MaterialEntry, error)
	Delete(ctx context.Context, id string) error
}
