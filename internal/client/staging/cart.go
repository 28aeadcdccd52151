package staging

import (
	"sync"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/domain/units"

	"github.com/shopspring/decimal"
)

// Cart is the multi-item store. Lines are unique by codigo and share the
// crew chosen at save time.
type Cart struct {
	mu    sync.Mutex
	lines []StagedLine
}

var _ Staged = (*Cart)(nil)

func NewCart() *Cart {
	return &Cart{}
}

// Add merges into an existing line (+1) or appends a new line with quantity 1.
func (c *Cart) Add(item entities.CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]StagedLine, len(c.lines), len(c.lines)+1)
	copy(next, c.lines)
	if i := indexOf(next, item.Codigo); i >= 0 {
		next[i].Cantidad = next[i].Cantidad.Add(one)
	} else {
		next = append(next, lineFromItem(item, one))
	}
	c.lines = next
}

func (c *Cart) Stage(item entities.CatalogItem) { c.Add(item) }

// EditQuantity applies delta to line index. It refuses changes that would
// leave the quantity at or below zero or off the unit granularity.
func (c *Cart) EditQuantity(index int, delta decimal.Decimal) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editLocked(index, delta)
}

func (c *Cart) EditQuantityByCode(codigo string, delta decimal.Decimal) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editLocked(indexOf(c.lines, codigo), delta)
}

func (c *Cart) editLocked(index int, delta decimal.Decimal) bool {
	if index < 0 || index >= len(c.lines) {
		return false
	}
	line := c.lines[index]
	class := units.Classify(line.Unidad)
	q := line.Cantidad.Add(delta)
	if class == units.Fractional {
		q = q.Round(1)
	}
	if !q.IsPositive() || !class.Accepts(q) {
		return false
	}

	next := make([]StagedLine, len(c.lines))
	copy(next, c.lines)
	next[index].Cantidad = q
	c.lines = next
	return true
}

func (c *Cart) Remove(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(index)
}

func (c *Cart) RemoveByCode(codigo string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(indexOf(c.lines, codigo))
}

func (c *Cart) removeLocked(index int) bool {
	if index < 0 || index >= len(c.lines) {
		return false
	}
	next := make([]StagedLine, 0, len(c.lines)-1)
	next = append(next, c.lines[:index]...)
	next = append(next, c.lines[index+1:]...)
	c.lines = next
	return true
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// ClearSent drops the lines that still match what was sent. Lines added or
// edited after the snapshot are kept.
func (c *Cart) ClearSent(sent []StagedLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]StagedLine, 0, len(c.lines))
	for _, l := range c.lines {
		i := indexOf(sent, l.Codigo)
		if i >= 0 && sent[i].sameAs(l) {
			continue
		}
		next = append(next, l)
	}
	c.lines = next
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []StagedLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]StagedLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Total is the sum of cantidad × costo_unitario.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount is the sum of quantities across lines.
func (c *Cart) ItemCount() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := decimal.Zero
	for _, l := range c.lines {
		n = n.Add(l.Cantidad)
	}
	return n
}

func indexOf(lines []StagedLine, codigo string) int {
	for i, l := range lines {
		if l.Codigo == codigo {
			return i
		}
	}
	return -1
}
