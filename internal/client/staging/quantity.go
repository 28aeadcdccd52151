package staging

import (
	"strings"
	"sync"

	"bitacora_materiales/internal/domain/units"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// QuantityControl holds the quantity being picked for a selected material.
// Its value is always > 0 and matches the unit granularity.
type QuantityControl struct {
	mu    sync.Mutex
	value decimal.Decimal
	class units.Class
}

func NewQuantityControl() *QuantityControl {
	return &QuantityControl{value: one, class: units.Integer}
}

// Reset sets the step from unit and the value back to 1.
func (q *QuantityControl) Reset(unit string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.class = units.Classify(unit)
	q.value = one
}

func (q *QuantityControl) Increment() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.value = q.round(q.value.Add(q.class.Step()))
}

// Decrement is a no-op once the value is at or below one step.
func (q *QuantityControl) Decrement() {
	q.mu.Lock()
	defer q.mu.Unlock()
	step := q.class.Step()
	if q.value.LessThanOrEqual(step) {
		return
	}
	q.value = q.round(q.value.Sub(step))
}

// Normalize replaces the value with typed input. Non-numeric, negative and
// zero input becomes 1; integer units floor the input.
func (q *QuantityControl) Normalize(raw string) decimal.Decimal {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.value = normalize(raw, q.class)
	return q.value
}

func (q *QuantityControl) Value() decimal.Decimal {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.value
}

func (q *QuantityControl) Class() units.Class {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.class
}

func (q *QuantityControl) round(v decimal.Decimal) decimal.Decimal {
	if q.class == units.Fractional {
		return v.Round(1)
	}
	return v
}

func normalize(raw string, class units.Class) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."))
	if err != nil || d.IsNegative() {
		return one
	}
	if class == units.Integer {
		d = d.Floor()
	} else {
		d = d.Round(1)
	}
	if !d.IsPositive() {
		return one
	}
	return d
}
