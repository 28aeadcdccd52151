package entities

import (
	"errors"
	"strings"
)

// Origin identifies the catalog (provider) a material comes from.
// Each origin has its own catalog table and code column.
type Origin string

const (
	OriginClaro Origin = "claro"
	OriginCicsa Origin = "cicsa"

	DefaultOrigin = OriginClaro
)

var ErrInvalidOrigin = errors.New("origen inválido")

// ParseOrigin accepts any casing and surrounding spaces.
func ParseOrigin(raw string) (Origin, error) {
	switch Origin(strings.ToLower(strings.TrimSpace(raw))) {
	case OriginClaro:
		return OriginClaro, nil
	case OriginCicsa:
		return OriginCicsa, nil
	default:
		return "", ErrInvalidOrigin
	}
}

// Label is the capitalised form stored on material entries ("Claro", "Cicsa").
func (o Origin) Label() string {
	if o == "" {
		return DefaultOrigin.Label()
	}
	s := string(o)
	return strings.ToUpper(s[:1]) + s[1:]
}
