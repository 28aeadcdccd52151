package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	request "bitacora_materiales/internal/adapter/http/dto/request"
	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/client/apierr"
	"bitacora_materiales/internal/client/reconcile"
	"bitacora_materiales/internal/client/search"
	"bitacora_materiales/internal/client/staging"
	"bitacora_materiales/internal/domain/entities"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu       sync.Mutex
	items    []entities.CatalogItem
	listed   []response.MaterialResponse
	saved    []request.SaveMaterialRequest
	batches  []request.SaveBatchRequest
	deleted  []string
	searches []string
}

func (f *fakeBackend) SearchCatalog(_ context.Context, _ string, term string) ([]entities.CatalogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, term)
	return f.items, nil
}

func (f *fakeBackend) GetBitacora(_ context.Context, id string) (response.BitacoraResponse, error) {
	return response.BitacoraResponse{ID: id, Titulo: "Poste 7", Brigadas: []string{"BR-07", "BR-12"}}, nil
}

func (f *fakeBackend) SaveMaterial(_ context.Context, req request.SaveMaterialRequest) (response.MaterialResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, req)
	m := response.MaterialResponse{ID: "m-1", Codigo: req.Codigo, Descripcion: req.Descripcion, Cantidad: req.Cantidad, Brigada: req.Brigada}
	f.listed = append([]response.MaterialResponse{m}, f.listed...)
	return m, nil
}

func (f *fakeBackend) SaveBatch(_ context.Context, req request.SaveBatchRequest) ([]response.MaterialResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, req)
	return []response.MaterialResponse{}, nil
}

func (f *fakeBackend) ListMaterials(context.Context, string) ([]response.MaterialResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]response.MaterialResponse{}, f.listed...), nil
}

func (f *fakeBackend) DeleteMaterial(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	kept := f.listed[:0]
	for _, m := range f.listed {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	f.listed = kept
	return nil
}

func (f *fakeBackend) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

var (
	cable = entities.CatalogItem{Codigo: "A1", Descripcion: "CABLE FO", Unidad: "M", Costo: decimal.RequireFromString("2.5")}
	clamp = entities.CatalogItem{Codigo: "B2", Descripcion: "GRAPA", Unidad: "UND", Costo: decimal.RequireFromString("10")}
)

func newTestModel(t *testing.T, cart bool) (Model, *fakeBackend) {
	t.Helper()
	b := &fakeBackend{items: []entities.CatalogItem{cable, clamp}}
	m := New(b, Options{BitacoraID: "42", Origin: "claro", Cart: cart, Debounce: 5 * time.Millisecond, Timeout: time.Second})
	t.Cleanup(m.Close)
	m = update(t, m, m.boot()())
	return m, b
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// run executes the command a key produced and feeds its message back.
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, key(string(r)))
	}
	return m
}

func awaitResults(t *testing.T, m Model) Model {
	t.Helper()
	select {
	case r := <-m.searcher.Results():
		return update(t, m, searchResultMsg{result: r})
	case <-time.After(2 * time.Second):
		t.Fatalf("no search result")
		return m
	}
}

func TestBoot(t *testing.T) {
	b := &fakeBackend{}
	m := New(b, Options{BitacoraID: "42"})
	t.Cleanup(m.Close)
	assert.Contains(t, m.View(), "Cargando…")

	m = update(t, m, m.boot()())
	assert.Equal(t, "Poste 7", m.titulo)
	assert.Equal(t, []string{"BR-07", "BR-12"}, m.crews)
	assert.Empty(t, m.crew(), "two crews means the operator has to choose")
	assert.Contains(t, m.View(), "Sin materiales registrados")
}

func TestSearchPanel(t *testing.T) {
	m, b := newTestModel(t, false)

	m = typeText(t, m, "ca")
	assert.Equal(t, PageState{Staging: staging.SelectionEmpty, ResultsOpen: false}, m.State())

	m = typeText(t, m, "b")
	assert.True(t, m.State().ResultsOpen)
	m = awaitResults(t, m)
	assert.Equal(t, search.ViewResults, m.view)
	assert.Len(t, m.results, 2)
	assert.Equal(t, 1, b.searchCount())
	assert.Contains(t, m.View(), "CABLE FO")

	// A result that was queued before a newer keystroke is ignored.
	m = update(t, m, searchResultMsg{result: search.Result{Seq: 0, View: search.ViewEmpty}})
	assert.Len(t, m.results, 2)

	m = update(t, m, key("esc"))
	assert.False(t, m.State().ResultsOpen)
	assert.Empty(t, m.results)
}

func TestSingleSelectionSave(t *testing.T) {
	m, b := newTestModel(t, false)

	m = typeText(t, m, "cab")
	m = awaitResults(t, m)
	m = update(t, m, key("enter"))
	assert.Equal(t, PageState{Staging: staging.SelectionSelected, ResultsOpen: false}, m.State())
	assert.Empty(t, m.input.Value())
	assert.Equal(t, focusStaging, m.focus)

	m = update(t, m, key("+"))
	assert.Equal(t, "1.1", m.qtyInput.Value())

	// No crew chosen yet: nothing leaves the page.
	m = run(t, m, key("ctrl+s"))
	assert.True(t, m.statusErr)
	assert.Equal(t, apierr.ErrCrewRequired.Reason, m.status)
	assert.Empty(t, b.saved)
	assert.Equal(t, staging.SelectionSelected, m.State().Staging)

	m = update(t, m, key("ctrl+b"))
	assert.Equal(t, "BR-07", m.crew())
	m = run(t, m, key("ctrl+s"))
	require.Len(t, b.saved, 1)
	assert.Equal(t, "A1", b.saved[0].Codigo)
	assert.Equal(t, "BR-07", b.saved[0].Brigada)
	assert.True(t, b.saved[0].Cantidad.Equal(decimal.RequireFromString("1.1")))

	assert.False(t, m.statusErr)
	assert.Equal(t, staging.SelectionEmpty, m.State().Staging)
	assert.Len(t, m.rec.List().Items, 1)
	assert.False(t, m.saving)
}

func TestTypedQuantityIsNormalized(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = typeText(t, m, "cab")
	m = awaitResults(t, m)
	m = update(t, m, key("down"))
	m = update(t, m, key("enter"))

	m.qtyInput.SetValue("")
	m = typeText(t, m, "2.7")
	m = update(t, m, key("enter"))
	assert.Equal(t, "2", m.qtyInput.Value(), "UND floors typed input")
}

func TestDeleteConfirmModal(t *testing.T) {
	m, b := newTestModel(t, false)
	b.listed = []response.MaterialResponse{{ID: "m-1", Codigo: "A1", Descripcion: "CABLE FO"}}
	m = run(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Len(t, m.rec.List().Items, 1)

	m = update(t, m, key("tab"))
	m = update(t, m, key("tab"))
	require.Equal(t, focusList, m.focus)

	m = update(t, m, key("d"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), reconcile.DeletePrompt)

	next, cmd := m.Update(key("enter"))
	m = next.(Model)
	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd, "cancel is focused by default")
	assert.Empty(t, b.deleted)

	m = update(t, m, key("d"))
	m = update(t, m, key("tab"))
	next, cmd = m.Update(key("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.deleting)
	assert.Contains(t, m.View(), "Eliminando…")

	m = update(t, m, cmd())
	assert.False(t, m.deleting)
	assert.Equal(t, []string{"m-1"}, b.deleted)
	assert.Equal(t, "Material eliminado", m.status)
	assert.True(t, m.rec.List().Empty())
}

func TestCartMode(t *testing.T) {
	m, b := newTestModel(t, true)

	pick := func(down int) {
		m = typeText(t, m, "cab")
		m = awaitResults(t, m)
		for i := 0; i < down; i++ {
			m = update(t, m, key("down"))
		}
		m = update(t, m, key("enter"))
	}
	pick(0)
	pick(1)
	pick(0)

	lines := m.cart.Lines()
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Cantidad.Equal(decimal.NewFromInt(2)))
	assert.True(t, m.cart.ItemCount().Equal(decimal.NewFromInt(3)))
	assert.Equal(t, focusSearch, m.focus, "cart mode keeps searching")

	m = update(t, m, key("tab"))
	m = update(t, m, key("+"))
	assert.True(t, m.cart.Lines()[0].Cantidad.Equal(decimal.RequireFromString("2.1")))
	m = update(t, m, key("x"))
	require.Equal(t, 1, m.cart.Len())
	assert.Equal(t, "B2", m.cart.Lines()[0].Codigo)

	m = update(t, m, key("ctrl+b"))
	m = run(t, m, key("ctrl+s"))
	require.Len(t, b.batches, 1)
	assert.Equal(t, "BR-07", b.batches[0].Brigada)
	assert.Zero(t, m.cart.Len())
	assert.True(t, strings.Contains(m.View(), "Carrito vacío"))
}

func TestCartPickDuringSaveIsKept(t *testing.T) {
	m, b := newTestModel(t, true)
	m = typeText(t, m, "cab")
	m = awaitResults(t, m)
	m = update(t, m, key("enter"))
	m = update(t, m, key("ctrl+b"))

	next, cmd := m.Update(key("ctrl+s"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Guardando…")

	// Pick a second material before the request runs.
	m = typeText(t, m, "cab")
	m = awaitResults(t, m)
	m = update(t, m, key("down"))
	m = update(t, m, key("enter"))
	require.Equal(t, 2, m.cart.Len())

	m = update(t, m, cmd())
	require.Len(t, b.batches, 1)
	require.Len(t, b.batches[0].Materiales, 1)
	assert.Equal(t, "A1", b.batches[0].Materiales[0].Codigo)

	lines := m.cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "B2", lines[0].Codigo)
	assert.Equal(t, 0, m.cartCursor)
}
