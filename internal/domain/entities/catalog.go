package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogItem is a material as offered by an origin catalog.
//
// Storage model:
//   - DynamoDB: one table per origin, PK: codigo
//   - Postgres: one table per origin, primary key codigo
//
// Costo is zero when the catalog carries no price for the item.
type CatalogItem struct {
	Codigo                 string          `json:"codigo"`
	Descripcion            string          `json:"descripcion"`
	Unidad                 string          `json:"unidad,omitempty"`
	NombreSimple           string          `json:"nombre_simple,omitempty"`
	Categoria              string          `json:"categoria,omitempty"`
	Subcategoria           string          `json:"subcategoria,omitempty"`
	SubcategoriaSecundaria string          `json:"subcategoria_secundaria,omitempty"`
	CodigoSecundario       string          `json:"codigo_secundario,omitempty"`
	Moneda                 string          `json:"moneda,omitempty"`
	Costo                  decimal.Decimal `json:"costo"`
	Activo                 bool            `json:"activo"`
}

// DisplayDescription appends the simple name when it adds information.
func (c CatalogItem) DisplayDescription() string {
	simple := strings.TrimSpace(c.NombreSimple)
	if simple == "" {
		return c.Descripcion
	}
	if strings.Contains(strings.ToLower(c.Descripcion), strings.ToLower(simple)) {
		return c.Descripcion
	}
	return fmt.Sprintf("%s (%s)", c.Descripcion, simple)
}

// SearchText is the lower-cased haystack used by stores without ILIKE.
func (c CatalogItem) SearchText() string {
	return strings.ToLower(strings.Join([]string{c.Codigo, c.Descripcion, c.NombreSimple}, " "))
}
