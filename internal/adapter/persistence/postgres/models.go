package postgres

import (
	"time"

	"bitacora_materiales/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	catalogoClaroTable = "catalogo_claro_resumido"
	catalogoCicsaTable = "catalogo_cicsa_materiales"
)

type Bitacora struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	Titulo      string
	Bri1Oficial string `gorm:"column:bri1_oficial"`
	Bri2Oficial string `gorm:"column:bri2_oficial"`
	Bri3Oficial string `gorm:"column:bri3_oficial"`
	Bri4Oficial string `gorm:"column:bri4_oficial"`
	Bri5Oficial string `gorm:"column:bri5_oficial"`
}

func (Bitacora) TableName() string { return "bitacoras" }

type MaterialAcumulado struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	BitacoraID    string `gorm:"index:idx_materiales_bitacora_created,priority:1;not null"`
	Origen        string `gorm:"not null"`
	Brigada       string `gorm:"not null"`
	Codigo        string `gorm:"not null"`
	Descripcion   string `gorm:"not null"`
	Unidad        string
	Cantidad      decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	CostoUnitario decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0"`
	CreatedAt     time.Time       `gorm:"index:idx_materiales_bitacora_created,priority:2,sort:desc"`
}

func (MaterialAcumulado) TableName() string { return "materiales_acumulado" }

// CatalogoMaterial maps both origin catalogs; the table is picked per query.
type CatalogoMaterial struct {
	Codigo                 string `gorm:"primaryKey"`
	Descripcion            string `gorm:"not null"`
	Unidad                 string
	NombreSimple           string
	Categoria              string
	Subcategoria           string
	SubcategoriaSecundaria string `gorm:"column:subcategoria_2"`
	CodigoSecundario       string `gorm:"column:codigo_2"`
	Moneda                 string
	Costo                  decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0"`
	Activo                 bool            `gorm:"not null;default:true"`
}

func catalogTable(origin entities.Origin) (string, error) {
	switch origin {
	case entities.OriginClaro:
		return catalogoClaroTable, nil
	case entities.OriginCicsa:
		return catalogoCicsaTable, nil
	default:
		return "", entities.ErrInvalidOrigin
	}
}

func toMaterialModel(m entities.MaterialEntry) MaterialAcumulado {
	return MaterialAcumulado{
		ID:            m.ID,
		BitacoraID:    m.BitacoraID,
		Origen:        m.Origen,
		Brigada:       m.Brigada,
		Codigo:        m.Codigo,
		Descripcion:   m.Descripcion,
		Unidad:        m.Unidad,
		Cantidad:      m.Cantidad,
		CostoUnitario: m.CostoUnitario,
		CreatedAt:     m.CreatedAt,
	}
}

func fromMaterialModel(m MaterialAcumulado) entities.MaterialEntry {
	return entities.MaterialEntry{
		ID:            m.ID,
		BitacoraID:    m.BitacoraID,
		Origen:        m.Origen,
		Brigada:       m.Brigada,
		Codigo:        m.Codigo,
		Descripcion:   m.Descripcion,
		Unidad:        m.Unidad,
		Cantidad:      m.Cantidad,
		CostoUnitario: m.CostoUnitario,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

func toCatalogModel(c entities.CatalogItem) CatalogoMaterial {
	return CatalogoMaterial{
		Codigo:                 c.Codigo,
		Descripcion:            c.Descripcion,
		Unidad:                 c.Unidad,
		NombreSimple:           c.NombreSimple,
		Categoria:              c.Categoria,
		Subcategoria:           c.Subcategoria,
		SubcategoriaSecundaria: c.SubcategoriaSecundaria,
		CodigoSecundario:       c.CodigoSecundario,
		Moneda:                 c.Moneda,
		Costo:                  c.Costo,
		Activo:                 c.Activo,
	}
}

func fromCatalogModel(c CatalogoMaterial) entities.CatalogItem {
	return entities.CatalogItem{
		Codigo:                 c.Codigo,
		Descripcion:            c.Descripcion,
		Unidad:                 c.Unidad,
		NombreSimple:           c.NombreSimple,
		Categoria:              c.Categoria,
		Subcategoria:           c.Subcategoria,
		SubcategoriaSecundaria: c.SubcategoriaSecundaria,
		CodigoSecundario:       c.CodigoSecundario,
		Moneda:                 c.Moneda,
		Costo:                  c.Costo,
		Activo:                 c.Activo,
	}
}

func fromBitacoraModel(b Bitacora) entities.Bitacora {
	return entities.Bitacora{
		ID:      b.ID,
		Titulo:  b.Titulo,
		Oficial: [5]string{b.Bri1Oficial, b.Bri2Oficial, b.Bri3Oficial, b.Bri4Oficial, b.Bri5Oficial},
	}
}
