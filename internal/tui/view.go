package tui

import (
	"fmt"
	"strings"

	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/client/reconcile"
	"bitacora_materiales/internal/client/search"
	"bitacora_materiales/internal/client/staging"
	"bitacora_materiales/internal/domain/entities"

	"github.com/charmbracelet/lipgloss"
)

const maxListRows = 12

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderSearch(),
		m.renderStaging(),
		m.renderList(),
		m.renderStatus(),
		styleMuted().Render(m.helpLine()),
	}
	page := strings.Join(sections, "\n")
	if m.confirm == nil {
		return page
	}
	modal := renderConfirmModal(m.confirm)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return page + "\n" + modal
}

func (m Model) renderHeader() string {
	mode := "selección"
	if m.opts.Cart {
		mode = "carrito"
	}
	title := fmt.Sprintf("Bitácora %s", m.opts.BitacoraID)
	if m.titulo != "" {
		title += " · " + m.titulo
	}
	crew := styleError().Render("sin brigada (ctrl+b)")
	if c := m.crew(); c != "" {
		crew = c
	}
	return styleHeading().Render(title) + "\n" +
		styleMuted().Render(fmt.Sprintf("Origen: %s   Modo: %s   Brigada: ", entities.Origin(m.opts.Origin).Label(), mode)) + crew
}

func (m Model) renderSearch() string {
	lines := []string{m.input.View()}
	switch m.view {
	case search.ViewClosed:
	case search.ViewEmpty:
		lines = append(lines, styleMuted().Render("Sin resultados"))
	default:
		if len(m.results) == 0 {
			lines = append(lines, styleMuted().Render("Buscando…"))
		}
		for i, it := range m.results {
			row := fmt.Sprintf("%-12s %s  %s  %s", it.Codigo, it.Descripcion, it.Unidad, it.Costo.StringFixed(2))
			if i == m.cursor && m.focus == focusSearch {
				row = styleSelected().Render(row)
			}
			lines = append(lines, row)
		}
		if m.view == search.ViewError {
			lines = append(lines, styleError().Render("Error de búsqueda"))
		}
	}
	return styleSection(m.focus == focusSearch).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStaging() string {
	var body string
	if m.opts.Cart {
		body = m.renderCart()
	} else {
		body = m.renderSelection()
	}
	return styleSection(m.focus == focusStaging).Render(body)
}

func (m Model) renderSelection() string {
	item, ok := m.sel.Item()
	if !ok || m.State().Staging == staging.SelectionEmpty {
		return styleMuted().Render("Ningún material seleccionado")
	}
	qty := m.sel.Quantity().Value().String()
	if m.focus == focusStaging {
		qty = m.qtyInput.View()
	}
	return fmt.Sprintf("%s  %s\nUnidad: %s   Cantidad: %s  (+/-, enter aplica)",
		item.Codigo, item.DisplayDescription(), item.Unidad, qty)
}

func (m Model) renderCart() string {
	lines := m.cart.Lines()
	if len(lines) == 0 {
		return styleMuted().Render("Carrito vacío")
	}
	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, styleMuted().Render(fmt.Sprintf("%-12s %-30s %8s %10s %10s", "Código", "Descripción", "Cant.", "Unit.", "Subtotal")))
	for i, l := range lines {
		row := fmt.Sprintf("%-12s %-30s %8s %10s %10s",
			l.Codigo, truncate(l.Descripcion, 30), l.Cantidad.String(), l.CostoUnitario.StringFixed(2), l.Subtotal().StringFixed(2))
		if i == m.cartCursor && m.focus == focusStaging {
			row = styleSelected().Render(row)
		}
		rows = append(rows, row)
	}
	rows = append(rows, fmt.Sprintf("Ítems: %s   Total: %s", m.cart.ItemCount().String(), m.cart.Total().StringFixed(2)))
	return strings.Join(rows, "\n")
}

func (m Model) renderList() string {
	v := m.rec.List()
	var body string
	switch {
	case !v.Loaded && v.Err == nil:
		body = styleMuted().Render("Cargando…")
	case v.Empty():
		body = styleMuted().Render("Sin materiales registrados")
	default:
		body = renderEntries(v.Items, m.listCursor, m.focus == focusList)
	}
	return styleSection(m.focus == focusList).Render(body)
}

func renderEntries(items []response.MaterialResponse, cursor int, active bool) string {
	start := 0
	if cursor >= maxListRows {
		start = cursor - maxListRows + 1
	}
	end := min(len(items), start+maxListRows)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		it := items[i]
		row := fmt.Sprintf("%-16s %-12s %-30s %6s %-5s %s",
			it.CreatedAt, it.Codigo, truncate(it.Descripcion, 30), it.Cantidad.String(), it.Unidad, it.Brigada)
		if active && i == cursor {
			row = styleSelected().Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	switch {
	case m.saving:
		return styleMuted().Render("Guardando…")
	case m.deleting:
		return styleMuted().Render("Eliminando…")
	case m.status == "":
		return ""
	case m.statusErr:
		return styleError().Render(m.status)
	default:
		return styleOK().Render(m.status)
	}
}

func (m Model) helpLine() string {
	switch m.focus {
	case focusStaging:
		if m.opts.Cart {
			return "↑/↓ línea   +/- cantidad   x quitar   ctrl+s guardar lote   tab foco"
		}
		return "+/- cantidad   esc cancelar   ctrl+s guardar   tab foco"
	case focusList:
		return "↑/↓ mover   d eliminar   ctrl+r recargar   tab foco"
	default:
		return "escriba para buscar   ↑/↓ enter elegir   ctrl+b brigada   ctrl+s guardar   ctrl+c salir"
	}
}

func renderConfirmModal(c *confirmState) string {
	btn := lipgloss.NewStyle().Padding(0, 1)
	yes, no := btn.Render("Eliminar"), btn.Render("Cancelar")
	if c.focus == confirmFocusConfirm {
		yes = styleSelected().Padding(0, 1).Render("Eliminar")
	} else {
		no = styleSelected().Padding(0, 1).Render("Cancelar")
	}
	body := strings.Join([]string{
		styleHeading().Render(reconcile.DeletePrompt),
		c.label,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, " ", no),
		"",
		styleMuted().Render("tab: foco   enter: elegir   esc: cancelar"),
	}, "\n")
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Padding(1, 2).Render(body)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
