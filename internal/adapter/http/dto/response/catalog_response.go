package response

import (
	"bitacora_materiales/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CatalogItemResponse struct {
	Codigo       string          `json:"codigo"`
	Descripcion  string          `json:"descripcion"`
	Unidad       string          `json:"unidad"`
	NombreSimple string          `json:"nombre_simple,omitempty"`
	Categoria    string          `json:"categoria,omitempty"`
	Subcategoria string          `json:"subcategoria,omitempty"`
	Costo        decimal.Decimal `json:"costo"`
}

type CatalogSearchResponse struct {
	OK    bool                  `json:"ok"`
	Items []CatalogItemResponse `json:"items"`
}

// FromCatalogItem renders descripcion with the simple name appended when it
// adds information.
func FromCatalogItem(c entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		Codigo:       c.Codigo,
		Descripcion:  c.DisplayDescription(),
		Unidad:       c.Unidad,
		NombreSimple: c.NombreSimple,
		Categoria:    c.Categoria,
		Subcategoria: c.Subcategoria,
		Costo:        c.Costo,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCatalogItem(c))
	}
	return out
}
