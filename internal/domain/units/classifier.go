// Package units decides the quantity granularity allowed by a unit of measure.
package units

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Class is the granularity of a unit of measure.
type Class int

const (
	Integer Class = iota
	Fractional
)

func (c Class) String() string {
	if c == Fractional {
		return "fractional"
	}
	return "integer"
}

var fractionalUnits = map[string]struct{}{
	"M":     {},
	"MTS":   {},
	"MT":    {},
	"MTR":   {},
	"KM":    {},
	"KG":    {},
	"LITRO": {},
	"M3":    {},
}

// Classify returns Fractional for length, weight and volume units, including
// any spelling that contains "METRO". Unknown and empty units are Integer.
func Classify(unit string) Class {
	u := strings.ToUpper(strings.TrimSpace(unit))
	if _, ok := fractionalUnits[u]; ok {
		return Fractional
	}
	if strings.Contains(u, "METRO") {
		return Fractional
	}
	return Integer
}

// Step is the increment used by quantity controls for the class.
func (c Class) Step() decimal.Decimal {
	if c == Fractional {
		return decimal.New(1, -1)
	}
	return decimal.NewFromInt(1)
}

// Accepts reports whether q has the granularity the class allows.
func (c Class) Accepts(q decimal.Decimal) bool {
	if c == Fractional {
		return q.Equal(q.Round(1))
	}
	return q.IsInteger()
}
