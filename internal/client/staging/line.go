package staging

import (
	"bitacora_materiales/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// StagedLine is a material picked but not yet saved.
type StagedLine struct {
	Codigo        string
	Descripcion   string
	Unidad        string
	Cantidad      decimal.Decimal
	CostoUnitario decimal.Decimal
}

func (l StagedLine) Subtotal() decimal.Decimal {
	return l.Cantidad.Mul(l.CostoUnitario)
}

func lineFromItem(item entities.CatalogItem, cantidad decimal.Decimal) StagedLine {
	return StagedLine{
		Codigo:        item.Codigo,
		Descripcion:   item.DisplayDescription(),
		Unidad:        item.Unidad,
		Cantidad:      cantidad,
		CostoUnitario: item.Costo,
	}
}

func (l StagedLine) sameAs(o StagedLine) bool {
	return l.Codigo == o.Codigo && l.Cantidad.Equal(o.Cantidad)
}

// Staged is what a save drains. After a successful save only the lines that
// were sent are dropped; anything staged or edited meanwhile stays.
type Staged interface {
	Lines() []StagedLine
	ClearSent(sent []StagedLine)
}
