package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialEntry is a material line persisted against a bitácora.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (bitacora_id-index): bitacora_id, sorted by created_at
//
// Entries are immutable: the field page only creates and deletes them.
type MaterialEntry struct {
	ID            string          `json:"id"`
	BitacoraID    string          `json:"bitacora_id"`
	Origen        string          `json:"origen"`
	Brigada       string          `json:"brigada"`
	Codigo        string          `json:"codigo"`
	Descripcion   string          `json:"descripcion"`
	Unidad        string          `json:"unidad"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Subtotal is cantidad × costo_unitario.
func (m MaterialEntry) Subtotal() decimal.Decimal {
	return m.Cantidad.Mul(m.CostoUnitario)
}

// MaterialBatch is a cart submitted in one request. All lines share the
// bitácora, origin and crew; the batch is stored all-or-nothing.
type MaterialBatch struct {
	BitacoraID string
	Origen     string
	Brigada    string
	Lines      []MaterialEntry
}
