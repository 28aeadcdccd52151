package interfaces

import (
	"context"

	"bitacora_materiales/internal/domain/entities"
)

// IBitacoraRepository reads logbooks. It returns a zero Bitacora when the id
// does not exist.
type IBitacoraRepository interface {
	GetByID(ctx context.Context, id string) (entities.Bitacora, error)
}
