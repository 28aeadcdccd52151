package staging

import (
	"sync"

	"bitacora_materiales/internal/domain/entities"
)

type SelectionState int

const (
	SelectionEmpty SelectionState = iota
	SelectionSelected
)

func (s SelectionState) String() string {
	if s == SelectionSelected {
		return "selected"
	}
	return "empty"
}

// Selection is the single-selection store: at most one material plus its
// quantity control.
type Selection struct {
	mu   sync.Mutex
	item *entities.CatalogItem
	qty  *QuantityControl
}

var _ Staged = (*Selection)(nil)

func NewSelection() *Selection {
	return &Selection{qty: NewQuantityControl()}
}

// Select replaces any current selection.
func (s *Selection) Select(item entities.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = &item
	s.qty.Reset(item.Unidad)
}

// Stage lets the search panel hand a picked item over.
func (s *Selection) Stage(item entities.CatalogItem) { s.Select(item) }

func (s *Selection) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = nil
	s.qty.Reset("")
}

func (s *Selection) Clear() { s.Cancel() }

// ClearSent cancels the selection only if it is still the saved line.
func (s *Selection) ClearSent(sent []StagedLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.item == nil || len(sent) != 1 {
		return
	}
	if !sent[0].sameAs(lineFromItem(*s.item, s.qty.Value())) {
		return
	}
	s.item = nil
	s.qty.Reset("")
}

func (s *Selection) State() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.item == nil {
		return SelectionEmpty
	}
	return SelectionSelected
}

func (s *Selection) Item() (entities.CatalogItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.item == nil {
		return entities.CatalogItem{}, false
	}
	return *s.item, true
}

func (s *Selection) Quantity() *QuantityControl { return s.qty }

// Lines returns the selected material at its current quantity, or nothing.
func (s *Selection) Lines() []StagedLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.item == nil {
		return nil
	}
	return []StagedLine{lineFromItem(*s.item, s.qty.Value())}
}
