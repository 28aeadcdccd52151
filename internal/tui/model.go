package tui

import (
	"context"
	"strings"
	"time"

	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/client/apierr"
	"bitacora_materiales/internal/client/reconcile"
	"bitacora_materiales/internal/client/search"
	"bitacora_materiales/internal/client/staging"
	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/domain/units"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Backend is everything the page needs from the API.
type Backend interface {
	reconcile.API
	search.Fetcher
	GetBitacora(ctx context.Context, id string) (response.BitacoraResponse, error)
}

type Options struct {
	BitacoraID string
	Origin     string
	Cart       bool
	Debounce   time.Duration
	Timeout    time.Duration
}

// rowActions are the per-row commands the render layer triggers. Cart rows
// are keyed by codigo and persisted rows by id.
type rowActions struct {
	increase func(codigo string) bool
	decrease func(codigo string) bool
	remove   func(codigo string) bool
	delete   func(id string) tea.Cmd
}

type Model struct {
	backend  Backend
	opts     Options
	searcher *search.Searcher
	rec      *reconcile.Reconciler
	sel      *staging.Selection
	cart     *staging.Cart
	actions  rowActions
	log      *zap.Logger

	input    textinput.Model
	qtyInput textinput.Model

	view    search.View
	results []entities.CatalogItem
	cursor  int

	focus      focus
	cartCursor int
	listCursor int
	confirm    *confirmState

	titulo  string
	crews   []string
	crewIdx int

	saving    bool
	deleting  bool
	status    string
	statusErr bool

	width  int
	height int
}

func New(b Backend, opts Options) Model {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if strings.TrimSpace(opts.Origin) == "" {
		opts.Origin = string(entities.DefaultOrigin)
	}

	in := textinput.New()
	in.Placeholder = "Buscar material (mín. 3 letras)"
	in.Prompt = "🔍 "
	in.CharLimit = 80
	in.Focus()

	qty := textinput.New()
	qty.Prompt = ""
	qty.CharLimit = 8
	qty.Width = 8

	searchOpts := []search.Option{search.WithTimeout(opts.Timeout)}
	if opts.Debounce > 0 {
		searchOpts = append(searchOpts, search.WithDebounce(opts.Debounce))
	}

	m := Model{
		backend:  b,
		opts:     opts,
		searcher: search.New(b, searchOpts...),
		rec:      reconcile.New(b, opts.BitacoraID, opts.Origin, reconcile.AlwaysConfirm),
		sel:      staging.NewSelection(),
		cart:     staging.NewCart(),
		log:      zap.L().Named("tui.page"),
		input:    in,
		qtyInput: qty,
		view:     search.ViewClosed,
		crewIdx:  -1,
	}
	m.actions = newRowActions(m.cart, m.rec, opts.Timeout)
	return m
}

func newRowActions(cart *staging.Cart, rec *reconcile.Reconciler, timeout time.Duration) rowActions {
	stepOf := func(codigo string) (decimal.Decimal, bool) {
		for _, l := range cart.Lines() {
			if l.Codigo == codigo {
				return units.Classify(l.Unidad).Step(), true
			}
		}
		return decimal.Zero, false
	}
	return rowActions{
		increase: func(codigo string) bool {
			step, ok := stepOf(codigo)
			return ok && cart.EditQuantityByCode(codigo, step)
		},
		decrease: func(codigo string) bool {
			step, ok := stepOf(codigo)
			return ok && cart.EditQuantityByCode(codigo, step.Neg())
		},
		remove: cart.RemoveByCode,
		delete: func(id string) tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()
				removed, err := rec.Remove(ctx, id)
				return deleteDoneMsg{id: id, removed: removed, err: err}
			}
		},
	}
}

// Close stops the search goroutines. Call it once the program has exited.
func (m Model) Close() { m.searcher.Close() }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.boot(), m.waitForSearch())
}

// boot loads the logbook and its entries in parallel.
func (m Model) boot() tea.Cmd {
	b, rec, id, timeout := m.backend, m.rec, m.opts.BitacoraID, m.opts.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		var bit response.BitacoraResponse
		g.Go(func() error {
			var err error
			bit, err = b.GetBitacora(gctx, id)
			return err
		})
		g.Go(func() error {
			_, err := rec.Refresh(gctx)
			return err
		})
		err := g.Wait()
		return bootMsg{bitacora: bit, err: err}
	}
}

func (m Model) waitForSearch() tea.Cmd {
	ch := m.searcher.Results()
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return searchResultMsg{result: r}
	}
}

// State is the explicit {Empty, Selected} x results-panel pair.
func (m Model) State() PageState {
	st := staging.SelectionEmpty
	if m.opts.Cart {
		if m.cart.Len() > 0 {
			st = staging.SelectionSelected
		}
	} else {
		st = m.sel.State()
	}
	return PageState{Staging: st, ResultsOpen: m.view != search.ViewClosed}
}

func (m Model) crew() string {
	if m.crewIdx < 0 || m.crewIdx >= len(m.crews) {
		return ""
	}
	return m.crews[m.crewIdx]
}

func (m Model) stager() search.Stager {
	if m.opts.Cart {
		return m.cart
	}
	return m.sel
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-8)
		return m, nil

	case bootMsg:
		m.titulo = msg.bitacora.Titulo
		m.crews = msg.bitacora.Brigadas
		assigned := 0
		for i, c := range m.crews {
			if entities.IsCrewAssigned(c) {
				assigned++
				m.crewIdx = i
			}
		}
		if assigned != 1 {
			m.crewIdx = -1
		}
		if msg.err != nil {
			m.log.Warn("boot failed", zap.String("bitacora_id", m.opts.BitacoraID), zap.Error(msg.err))
			m.setStatus(apierr.UserMessage(msg.err), true)
		}
		return m, nil

	case searchResultMsg:
		r := msg.result
		if m.searcher.IsCurrent(r.Seq) {
			m.applySearch(r)
		}
		return m, m.waitForSearch()

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.setStatus(apierr.UserMessage(msg.err), true)
			return m, nil
		}
		m.setStatus("Materiales guardados", false)
		m.qtyInput.SetValue("")
		if m.sel.State() == staging.SelectionSelected {
			m.qtyInput.SetValue(m.sel.Quantity().Value().String())
		}
		m.cartCursor = max(0, min(m.cartCursor, m.cart.Len()-1))
		m.clampListCursor()
		return m, nil

	case deleteDoneMsg:
		m.deleting = false
		if msg.err != nil {
			m.setStatus(apierr.UserMessage(msg.err), true)
			return m, nil
		}
		if msg.removed {
			m.setStatus("Material eliminado", false)
		}
		m.clampListCursor()
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			m.setStatus(apierr.UserMessage(msg.err), true)
		}
		m.clampListCursor()
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) applySearch(r search.Result) {
	switch r.View {
	case search.ViewError:
		m.view = search.ViewError
		m.setStatus("No se pudo buscar. Intente nuevamente.", true)
	case search.ViewClosed:
		m.view = search.ViewClosed
		m.results = nil
	default:
		m.view = r.View
		m.results = r.Items
		m.cursor = 0
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+s":
		return m.save()
	case "ctrl+b":
		if len(m.crews) > 0 {
			m.crewIdx = (m.crewIdx + 1) % len(m.crews)
		}
		return m, nil
	case "ctrl+r":
		return m, m.refresh()
	case "tab":
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + 2) % 3)
		return m, nil
	case "esc":
		switch {
		case m.view != search.ViewClosed:
			m.closeResults()
		case !m.opts.Cart && m.sel.State() == staging.SelectionSelected:
			m.sel.Cancel()
			m.qtyInput.SetValue("")
		}
		return m, nil
	}

	switch m.focus {
	case focusStaging:
		return m.updateStaging(msg)
	case focusList:
		return m.updateList(msg)
	default:
		return m.updateSearch(msg)
	}
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view != search.ViewClosed && len(m.results) > 0 {
		switch msg.String() {
		case "up":
			m.cursor = max(0, m.cursor-1)
			return m, nil
		case "down":
			m.cursor = min(len(m.results)-1, m.cursor+1)
			return m, nil
		case "enter":
			m.pick(m.results[m.cursor])
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.view = m.searcher.Input(m.input.Value(), m.opts.Origin)
		if m.view == search.ViewClosed {
			m.results = nil
		}
	}
	return m, cmd
}

func (m *Model) pick(item entities.CatalogItem) {
	m.searcher.Pick(item, m.stager())
	m.input.SetValue("")
	m.view = search.ViewClosed
	m.results = nil
	m.cursor = 0
	if m.opts.Cart {
		m.setStatus("Agregado: "+item.Codigo, false)
		return
	}
	m.qtyInput.SetValue(m.sel.Quantity().Value().String())
	m.setFocus(focusStaging)
}

func (m *Model) closeResults() {
	m.searcher.Input("", m.opts.Origin)
	m.view = search.ViewClosed
	m.results = nil
}

func (m Model) updateStaging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.opts.Cart {
		lines := m.cart.Lines()
		if len(lines) == 0 {
			return m, nil
		}
		m.cartCursor = min(m.cartCursor, len(lines)-1)
		codigo := lines[m.cartCursor].Codigo
		switch msg.String() {
		case "up":
			m.cartCursor = max(0, m.cartCursor-1)
		case "down":
			m.cartCursor = min(len(lines)-1, m.cartCursor+1)
		case "+", "=":
			m.actions.increase(codigo)
		case "-":
			if !m.actions.decrease(codigo) {
				m.setStatus("La cantidad debe ser mayor a cero", true)
			}
		case "x", "delete":
			m.actions.remove(codigo)
			m.cartCursor = max(0, min(m.cartCursor, m.cart.Len()-1))
		}
		return m, nil
	}

	if m.sel.State() != staging.SelectionSelected {
		return m, nil
	}
	q := m.sel.Quantity()
	switch msg.String() {
	case "+", "=":
		q.Increment()
		m.qtyInput.SetValue(q.Value().String())
		return m, nil
	case "-":
		q.Decrement()
		m.qtyInput.SetValue(q.Value().String())
		return m, nil
	case "enter":
		m.qtyInput.SetValue(q.Normalize(m.qtyInput.Value()).String())
		return m, nil
	case "backspace":
		var cmd tea.Cmd
		m.qtyInput, cmd = m.qtyInput.Update(msg)
		return m, cmd
	}
	if msg.Type == tea.KeyRunes && strings.Trim(string(msg.Runes), "0123456789.,") == "" {
		var cmd tea.Cmd
		m.qtyInput, cmd = m.qtyInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.rec.List().Items
	switch msg.String() {
	case "up":
		m.listCursor = max(0, m.listCursor-1)
	case "down":
		m.listCursor = max(0, min(len(items)-1, m.listCursor+1))
	case "d", "delete":
		if m.listCursor < len(items) && !m.deleting && !m.rec.Busy() {
			it := items[m.listCursor]
			m.confirm = &confirmState{id: it.ID, label: it.Codigo + " " + it.Descripcion, focus: confirmFocusCancel}
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.confirm = nil
	case "tab", "left", "right", "shift+tab":
		if m.confirm.focus == confirmFocusConfirm {
			m.confirm.focus = confirmFocusCancel
		} else {
			m.confirm.focus = confirmFocusConfirm
		}
	case "y":
		id := m.confirm.id
		m.confirm = nil
		return m.startDelete(id)
	case "enter":
		c := m.confirm
		m.confirm = nil
		if c.focus == confirmFocusConfirm {
			return m.startDelete(c.id)
		}
	}
	return m, nil
}

func (m Model) startDelete(id string) (tea.Model, tea.Cmd) {
	m.deleting = true
	m.status = ""
	return m, m.actions.delete(id)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.saving || m.rec.Busy() {
		return m, nil
	}
	if !m.opts.Cart && m.sel.State() == staging.SelectionSelected && m.qtyInput.Value() != "" {
		m.qtyInput.SetValue(m.sel.Quantity().Normalize(m.qtyInput.Value()).String())
	}

	rec, crew, timeout := m.rec, m.crew(), m.opts.Timeout
	var run func(context.Context) error
	if m.opts.Cart {
		cart := m.cart
		run = func(ctx context.Context) error { return rec.SaveCart(ctx, cart, crew) }
	} else {
		sel := m.sel
		run = func(ctx context.Context) error { return rec.SaveSelection(ctx, sel, crew) }
	}

	m.saving = true
	m.status = ""
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return saveDoneMsg{err: run(ctx)}
	}
}

func (m Model) refresh() tea.Cmd {
	rec, timeout := m.rec, m.opts.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := rec.Refresh(ctx)
		return refreshDoneMsg{err: err}
	}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	if f == focusStaging && !m.opts.Cart {
		m.qtyInput.Focus()
	} else {
		m.qtyInput.Blur()
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) clampListCursor() {
	n := len(m.rec.List().Items)
	m.listCursor = max(0, min(m.listCursor, n-1))
}
