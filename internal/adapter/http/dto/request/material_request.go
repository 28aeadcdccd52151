package request

import (
	"strings"

	"bitacora_materiales/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// SaveMaterialRequest is the single-selection save payload.
type SaveMaterialRequest struct {
	BitacoraID    string          `json:"bitacora_id" binding:"required"`
	Origen        string          `json:"origen"`
	Brigada       string          `json:"brigada"`
	Codigo        string          `json:"codigo" binding:"required"`
	Descripcion   string          `json:"descripcion"`
	Unidad        string          `json:"unidad"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
}

func (r SaveMaterialRequest) ToEntity() entities.MaterialEntry {
	return entities.MaterialEntry{
		BitacoraID:    strings.TrimSpace(r.BitacoraID),
		Origen:        r.Origen,
		Brigada:       r.Brigada,
		Codigo:        strings.TrimSpace(r.Codigo),
		Descripcion:   strings.TrimSpace(r.Descripcion),
		Unidad:        strings.TrimSpace(r.Unidad),
		Cantidad:      r.Cantidad,
		CostoUnitario: r.CostoUnitario,
	}
}

type BatchLineRequest struct {
	Codigo        string          `json:"codigo" binding:"required"`
	Descripcion   string          `json:"descripcion"`
	Unidad        string          `json:"unidad"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	// Subtotal is sent by the cart page for display; the server recomputes it.
	Subtotal decimal.Decimal `json:"subtotal"`
}

// SaveBatchRequest is the cart save payload.
type SaveBatchRequest struct {
	BitacoraID string             `json:"bitacora_id" binding:"required"`
	Origen     string             `json:"origen"`
	Brigada    string             `json:"brigada_seleccionada"`
	Materiales []BatchLineRequest `json:"materiales" binding:"required,min=1,dive"`
}

func (r SaveBatchRequest) ToEntity() entities.MaterialBatch {
	lines := make([]entities.MaterialEntry, 0, len(r.Materiales))
	for _, m := range r.Materiales {
		lines = append(lines, entities.MaterialEntry{
			Codigo:        strings.TrimSpace(m.Codigo),
			Descripcion:   strings.TrimSpace(m.Descripcion),
			Unidad:        strings.TrimSpace(m.Unidad),
			Cantidad:      m.Cantidad,
			CostoUnitario: m.CostoUnitario,
		})
	}
	return entities.MaterialBatch{
		BitacoraID: strings.TrimSpace(r.BitacoraID),
		Origen:     r.Origen,
		Brigada:    r.Brigada,
		Lines:      lines,
	}
}
