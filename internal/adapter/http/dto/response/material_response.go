package response

import (
	"bitacora_materiales/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreatedAtLayout is how list rows show the creation time.
const CreatedAtLayout = "2006-01-02 15:04"

type MaterialResponse struct {
	ID            string          `json:"id"`
	BitacoraID    string          `json:"bitacora_id"`
	Origen        string          `json:"origen"`
	Brigada       string          `json:"brigada"`
	Codigo        string          `json:"codigo"`
	Descripcion   string          `json:"descripcion"`
	Unidad        string          `json:"unidad"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	CreatedAt     string          `json:"created_at"`
}

type MaterialItemResponse struct {
	OK   bool             `json:"ok"`
	Item MaterialResponse `json:"item"`
}

type MaterialListResponse struct {
	OK    bool               `json:"ok"`
	Items []MaterialResponse `json:"items"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

func FromMaterial(m entities.MaterialEntry) MaterialResponse {
	created := ""
	if !m.CreatedAt.IsZero() {
		created = m.CreatedAt.UTC().Format(CreatedAtLayout)
	}
	return MaterialResponse{
		ID:            m.ID,
		BitacoraID:    m.BitacoraID,
		Origen:        m.Origen,
		Brigada:       m.Brigada,
		Codigo:        m.Codigo,
		Descripcion:   m.Descripcion,
		Unidad:        m.Unidad,
		Cantidad:      m.Cantidad,
		CostoUnitario: m.CostoUnitario,
		CreatedAt:     created,
	}
}

func FromMaterials(items []entities.MaterialEntry) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMaterial(m))
	}
	return out
}
