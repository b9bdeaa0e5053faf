package dashui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/modepsa/hornotui/internal/report"
)

const usuarioColWidth = 14

func reportColumns() []table.Column {
	return []table.Column{
		{Title: "Número OT", Width: 12},
		{Title: "Horno", Width: 9},
		{Title: "Inicio", Width: 16},
		{Title: "Fin", Width: 16},
		{Title: "Zona 1", Width: 9},
		{Title: "Zona 2", Width: 9},
		{Title: "Zona 3", Width: 9},
		{Title: "Dureza", Width: 10},
		{Title: "Peso", Width: 9},
		{Title: "Usuario", Width: usuarioColWidth},
	}
}

// rebuildTable re-renders the current result page into table rows.
// Absent readings show the missing marker, zeros render normally.
func (a *App) rebuildTable() {
	rows := make([]table.Row, 0, len(a.ctrl.Rows))
	for _, r := range a.ctrl.Rows {
		rows = append(rows, table.Row{
			r.NumeroOT,
			runewidth.Truncate(r.Horno, 9, "…"),
			report.FormatTimestamp(r.Fecha),
			report.FormatTimestamp(r.FechaFin),
			report.FormatTemp(r.TempZona1),
			report.FormatTemp(r.TempZona2),
			report.FormatTemp(r.TempZona3),
			report.FormatHardness(r.Dureza),
			report.FormatWeight(r.PesoKg),
			runewidth.Truncate(report.FormatText(r.Usuario), usuarioColWidth, "…"),
		})
	}
	a.table.SetRows(rows)
	a.table.SetCursor(0)
}

func (a *App) updateReportes(msg tea.KeyMsg) tea.Cmd {
	if a.filtering {
		return a.updateFilter(msg)
	}
	switch msg.String() {
	case "/":
		a.filtering = true
		a.filterFocus = 0
		a.otInput.SetValue(a.ctrl.Filters.NumeroOT)
		return a.otInput.Focus()
	case "c":
		a.picker = newRangePicker(&a.rng, time.Now())
		return nil
	case "x":
		a.ctrl.Clear()
		a.rng.Clear()
		a.otInput.SetValue("")
		a.ootIdx = 0
		a.rebuildTable()
		return nil
	case "s":
		if a.ctrl.Loading() {
			return nil
		}
		return a.search(1)
	case "e":
		return a.export()
	case "left", "h":
		return a.goToPage(a.ctrl.Page - 1)
	case "right", "l":
		return a.goToPage(a.ctrl.Page + 1)
	case "g":
		return a.goToPage(1)
	case "G":
		return a.goToPage(a.ctrl.Pages)
	}
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return cmd
}

func (a *App) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.filtering = false
		a.otInput.Blur()
		return nil
	case "tab", "shift+tab":
		a.filterFocus = 1 - a.filterFocus
		if a.filterFocus == 0 {
			return a.otInput.Focus()
		}
		a.otInput.Blur()
		return nil
	case "enter":
		a.filtering = false
		a.otInput.Blur()
		a.ctrl.Filters.NumeroOT = a.otInput.Value()
		a.ctrl.Filters.OOT = report.OOTOptions[a.ootIdx]
		return a.search(1)
	case "left", "right":
		if a.filterFocus == 1 {
			n := len(report.OOTOptions)
			if msg.String() == "left" {
				a.ootIdx = (a.ootIdx + n - 1) % n
			} else {
				a.ootIdx = (a.ootIdx + 1) % n
			}
			return nil
		}
	}
	if a.filterFocus == 0 {
		var cmd tea.Cmd
		a.otInput, cmd = a.otInput.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) renderReportes() string {
	sections := []string{
		a.renderFilterBar(),
		a.renderStatusLine(),
		a.table.View(),
		a.renderPagination(),
	}
	return strings.Join(sections, "\n")
}

func (a *App) renderFilterBar() string {
	th := a.theme

	otLabel := th.Subtitle.Render("OT ")
	otView := a.otInput.View()

	oot := "‹ " + report.OOTOptions[a.ootIdx] + " ›"
	ootView := th.Subtitle.Render("OOT ") + oot
	if a.filtering && a.filterFocus == 1 {
		ootView = th.Subtitle.Render("OOT ") + th.Accent.Render(oot)
	}

	desde, hasta := report.Missing, report.Missing
	if a.ctrl.Filters.Desde != nil {
		desde = report.FormatRangeDate(a.ctrl.Filters.Desde)
	}
	if a.ctrl.Filters.Hasta != nil {
		hasta = report.FormatRangeDate(a.ctrl.Filters.Hasta)
	}
	rango := th.Subtitle.Render("Rango ") + desde + " – " + hasta

	return lipgloss.JoinHorizontal(lipgloss.Top,
		otLabel, otView, "   ", ootView, "   ", rango)
}

func (a *App) renderStatusLine() string {
	th := a.theme
	switch {
	case a.ctrl.Loading():
		return a.spin.View() + th.Muted.Render(" consultando…")
	case a.exporting:
		return a.spin.View() + th.Muted.Render(" exportando…")
	case a.ctrl.ErrMsg() != "":
		return th.Error.Render(a.ctrl.ErrMsg())
	case len(a.ctrl.Rows) == 0:
		return th.Muted.Render("Sin resultados")
	}
	return ""
}

func (a *App) renderPagination() string {
	th := a.theme
	current := strconv.Itoa(a.ctrl.Page)

	var parts []string
	for _, tok := range report.BuildPageList(a.ctrl.Page, a.ctrl.Pages) {
		switch tok {
		case report.Ellipsis:
			parts = append(parts, th.Muted.Render(" "+tok+" "))
		case current:
			parts = append(parts, th.PageActive.Render(tok))
		default:
			parts = append(parts, th.PageInactive.Render(tok))
		}
	}
	pager := strings.Join(parts, "")
	total := th.Muted.Render(fmt.Sprintf("  %d registros, página %d de %d", a.ctrl.Total, a.ctrl.Page, a.ctrl.Pages))
	return pager + total
}
