package entities

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseOrigin(t *testing.T) {
	for _, raw := range []string{"claro", " CLARO ", "Claro"} {
		o, err := ParseOrigin(raw)
		if err != nil || o != OriginClaro {
			t.Fatalf("ParseOrigin(%q) = %q, %v", raw, o, err)
		}
	}
	if o, err := ParseOrigin("cicsa"); err != nil || o.Label() != "Cicsa" {
		t.Fatalf("unexpected cicsa parse: %q %v", o, err)
	}
	if _, err := ParseOrigin("telmex"); !errors.Is(err, ErrInvalidOrigin) {
		t.Fatalf("expected ErrInvalidOrigin, got %v", err)
	}
	if Origin("").Label() != "Claro" {
		t.Fatalf("empty origin should default to Claro")
	}
}

func TestCatalogItem_DisplayDescription(t *testing.T) {
	cases := []struct {
		name string
		item CatalogItem
		want string
	}{
		{"no simple name", CatalogItem{Descripcion: "CABLE FO 12H"}, "CABLE FO 12H"},
		{"blank simple name", CatalogItem{Descripcion: "CABLE FO 12H", NombreSimple: "  "}, "CABLE FO 12H"},
		{"already contained", CatalogItem{Descripcion: "CINTA AISLANTE 3M", NombreSimple: "cinta"}, "CINTA AISLANTE 3M"},
		{"appended", CatalogItem{Descripcion: "PREFORMADO 1/2", NombreSimple: "retenida"}, "PREFORMADO 1/2 (retenida)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.DisplayDescription(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBitacora_Brigadas(t *testing.T) {
	b := Bitacora{Oficial: [5]string{"", "BR-07", " ", "BR-12", ""}}
	if got := b.Brigadas(); !reflect.DeepEqual(got, []string{"BR-07", "BR-12"}) {
		t.Fatalf("unexpected brigadas %v", got)
	}
	if got := (Bitacora{}).Brigadas(); !reflect.DeepEqual(got, []string{BrigadaSinAsignar}) {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestIsCrewAssigned(t *testing.T) {
	if IsCrewAssigned("") || IsCrewAssigned("   ") || IsCrewAssigned(BrigadaSinAsignar) {
		t.Fatalf("blank and placeholder crews must not count as assigned")
	}
	if !IsCrewAssigned("BR-07") {
		t.Fatalf("expected BR-07 assigned")
	}
}

func TestMaterialEntry_Subtotal(t *testing.T) {
	m := MaterialEntry{Cantidad: decimal.RequireFromString("2.5"), CostoUnitario: decimal.RequireFromString("14.55")}
	if !m.Subtotal().Equal(decimal.RequireFromString("36.375")) {
		t.Fatalf("unexpected subtotal %s", m.Subtotal())
	}
}
