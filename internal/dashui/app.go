// Package dashui implements the admin dashboard: sidebar navigation,
// the furnace report browser and the date-range picker, on top of the
// query controller.
package dashui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modepsa/hornotui/internal/api"
	"github.com/modepsa/hornotui/internal/calendar"
	"github.com/modepsa/hornotui/internal/export"
	"github.com/modepsa/hornotui/internal/logger"
	"github.com/modepsa/hornotui/internal/model"
	"github.com/modepsa/hornotui/internal/report"
	"github.com/modepsa/hornotui/internal/store"
	"github.com/modepsa/hornotui/internal/tui"
)

const (
	menuDashboard = iota
	menuReportes
	menuAjustes
)

type reportMsg struct {
	seq  uint64
	resp *model.ReportResponse
	err  error
}

type exportMsg struct {
	path string
	err  error
}

type toastClearMsg struct {
	id int
}

// App is the root Bubble Tea model. While login is non-nil every
// message is routed to the login screen; afterwards it owns the
// dashboard.
type App struct {
	st        *store.Store
	cli       *api.Client
	log       *logger.Logger
	cfg       model.Config
	exportDir string

	session *model.Session
	login   *tui.Model

	theme            Theme
	sidebarCollapsed bool
	activeMenu       int

	ctrl   *report.Controller
	rng    calendar.Range
	picker *rangePicker

	table table.Model
	spin  spinner.Model

	otInput     textinput.Model
	ootIdx      int
	filterFocus int
	filtering   bool

	exporting bool
	toast     string
	toastErr  bool
	toastID   int

	width  int
	height int
}

// New wires the dashboard. A nil session starts at the login screen.
func New(st *store.Store, cli *api.Client, log *logger.Logger, cfg model.Config,
	session *model.Session, settings model.Settings, exportDir string) *App {

	ot := textinput.New()
	ot.Prompt = ""
	ot.Placeholder = "Número OT"
	ot.Width = 16

	tbl := table.New(
		table.WithColumns(reportColumns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	a := &App{
		st:               st,
		cli:              cli,
		log:              log,
		cfg:              cfg,
		exportDir:        exportDir,
		session:          session,
		sidebarCollapsed: settings.SidebarCollapsed,
		ctrl:             report.NewController(),
		table:            tbl,
		spin:             spinner.New(),
		otInput:          ot,
	}
	a.spin.Spinner = spinner.Dot
	a.applyTheme(ThemeByName(settings.Theme))
	if session == nil {
		a.login = tui.NewModel(st)
	}
	return a
}

func (a *App) applyTheme(th Theme) {
	a.theme = th
	a.spin.Style = th.Accent

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(th.Title.GetForeground()).
		BorderForeground(th.Muted.GetForeground())
	styles.Cell = styles.Cell.Foreground(th.TableMuted.GetForeground())
	styles.Selected = styles.Selected.
		Foreground(th.DaySelected.GetForeground()).
		Background(th.DaySelected.GetBackground()).
		Bold(false)
	a.table.SetStyles(styles)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.login != nil {
		return a.login.Init()
	}
	return a.search(1)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		if a.login != nil {
			_, cmd := a.login.Update(msg)
			return a, cmd
		}
		return a, nil

	case tui.SuccessMsg:
		a.session = &msg.Session
		a.login = nil
		if err := a.st.SaveSession(context.Background(), msg.Session); err != nil {
			a.log.Errorw("failed to persist session", "error", err)
		}
		a.log.Infow("login", "usuario", msg.Session.User.Usuario)
		return a, a.search(1)

	case reportMsg:
		if a.ctrl.Apply(msg.seq, msg.resp, msg.err) {
			a.rebuildTable()
		}
		return a, nil

	case exportMsg:
		a.exporting = false
		if msg.err != nil {
			a.log.Errorw("export failed", "error", msg.err)
			return a, a.showToast("Error al exportar: "+msg.err.Error(), true)
		}
		a.log.Infow("export saved", "path", msg.path)
		return a, a.showToast("Guardado en "+msg.path, false)

	case toastClearMsg:
		if msg.id == a.toastID {
			a.toast = ""
		}
		return a, nil

	case spinner.TickMsg:
		if a.ctrl.Loading() || a.exporting {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.login != nil {
		_, cmd := a.login.Update(msg)
		return a, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and similar component messages go to whichever
		// input currently has focus.
		if a.picker != nil && a.picker.jumping {
			var cmd tea.Cmd
			a.picker.jump, cmd = a.picker.jump.Update(msg)
			return a, cmd
		}
		if a.filtering && a.filterFocus == 0 {
			var cmd tea.Cmd
			a.otInput, cmd = a.otInput.Update(msg)
			return a, cmd
		}
		return a, nil
	}
	if key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.picker != nil {
		action, cmd := a.picker.handleKey(key)
		switch action {
		case pickerClosed:
			a.picker = nil
		case pickerCompleted:
			a.syncRangeFilters()
			a.picker = nil
		case pickerCleared:
			a.syncRangeFilters()
		}
		return a, cmd
	}

	if !a.filtering {
		switch key.String() {
		case "q":
			return a, tea.Quit
		case "1":
			a.activeMenu = menuDashboard
			return a, nil
		case "2":
			a.activeMenu = menuReportes
			return a, nil
		case "3":
			a.activeMenu = menuAjustes
			return a, nil
		case "b":
			a.sidebarCollapsed = !a.sidebarCollapsed
			a.layout()
			a.persistSetting(store.KeySidebarCollapsed, strconv.FormatBool(a.sidebarCollapsed))
			return a, nil
		case "t":
			if a.theme.Name == "dark" {
				a.applyTheme(LightTheme())
			} else {
				a.applyTheme(DarkTheme())
			}
			a.persistSetting(store.KeyTheme, a.theme.Name)
			return a, nil
		case "ctrl+l":
			return a, a.logout()
		}
	}

	if a.activeMenu == menuReportes {
		return a, a.updateReportes(key)
	}
	return a, nil
}

func (a *App) persistSetting(key, value string) {
	if err := a.st.SaveSetting(context.Background(), key, value); err != nil {
		a.log.Errorw("failed to persist setting", "key", key, "error", err)
	}
}

func (a *App) logout() tea.Cmd {
	if err := a.st.DeleteSession(context.Background()); err != nil {
		a.log.Errorw("failed to delete session", "error", err)
	}
	a.session = nil
	a.login = tui.NewModel(a.st)
	cmd := a.login.Init()
	if a.width > 0 {
		_, _ = a.login.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return cmd
}

// search snapshots the filters and fires the request for page.
func (a *App) search(page int) tea.Cmd {
	payload, seq := a.ctrl.StartSearch(page)
	return tea.Batch(a.spin.Tick, a.searchCmd(payload, seq))
}

// goToPage issues a page jump only when the controller allows it.
func (a *App) goToPage(p int) tea.Cmd {
	if !a.ctrl.CanGoTo(p) {
		return nil
	}
	return a.search(p)
}

func (a *App) export() tea.Cmd {
	if a.ctrl.Loading() || a.exporting {
		return nil
	}
	a.exporting = true
	return tea.Batch(a.spin.Tick, a.exportCmd(a.ctrl.ExportPayload()))
}

func (a *App) searchCmd(payload model.ReportPayload, seq uint64) tea.Cmd {
	cli := a.cli
	return func() tea.Msg {
		resp, err := cli.FetchReport(context.Background(), payload)
		return reportMsg{seq: seq, resp: resp, err: err}
	}
}

func (a *App) exportCmd(payload model.ReportPayload) tea.Cmd {
	cli, st, log, dir := a.cli, a.st, a.log, a.exportDir
	return func() tea.Msg {
		ctx := context.Background()
		data, err := cli.ExportExcel(ctx, payload)
		if err != nil {
			return exportMsg{err: err}
		}
		now := time.Now()
		path, err := export.Save(dir, data, now)
		if err != nil {
			return exportMsg{err: err}
		}
		if err := st.LogExport(ctx, filepath.Base(path), now); err != nil {
			log.Errorw("failed to record export", "error", err)
		}
		return exportMsg{path: path}
	}
}

// syncRangeFilters copies the picker selection into the controller
// filters; an incomplete or cleared selection removes the date bounds.
func (a *App) syncRangeFilters() {
	a.ctrl.Filters.Desde, a.ctrl.Filters.Hasta = nil, nil
	if a.rng.From != nil {
		d := *a.rng.From
		a.ctrl.Filters.Desde = &d
	}
	if a.rng.To != nil {
		h := *a.rng.To
		a.ctrl.Filters.Hasta = &h
	}
}

func (a *App) showToast(text string, isErr bool) tea.Cmd {
	a.toast = text
	a.toastErr = isErr
	a.toastID++
	id := a.toastID
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return toastClearMsg{id: id}
	})
}

func (a *App) layout() {
	if a.width == 0 {
		return
	}
	sw := sidebarWidth
	if a.sidebarCollapsed {
		sw = sidebarCollapsedWidth
	}
	contentWidth := a.width - sw - 4
	if contentWidth < 40 {
		contentWidth = 40
	}
	a.table.SetWidth(contentWidth)

	// header, filter bar, status, pagination, footer and paddings.
	h := a.height - 9
	if h < 4 {
		h = 4
	}
	a.table.SetHeight(h)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.login != nil {
		return a.login.View()
	}
	if a.picker != nil {
		modal := a.picker.view(a.theme)
		if a.width > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 4 {
		bodyHeight = 4
	}

	var content string
	switch a.activeMenu {
	case menuReportes:
		content = a.renderReportes()
	case menuAjustes:
		content = a.renderAjustes()
	default:
		content = a.renderDashboard()
	}
	content = lipgloss.NewStyle().Padding(0, 1).Render(content)

	sidebar := renderSidebar(a.theme, a.activeMenu, a.sidebarCollapsed, a.session.User, bodyHeight-2)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a *App) renderHeader() string {
	th := a.theme
	left := th.Title.Render(" Panel de Hornos — " + menuItems[a.activeMenu].label)
	right := th.Muted.Render(a.session.User.Usuario + " ")
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderFooter() string {
	th := a.theme
	help := th.Muted.Render(" 1-3: sección  /: filtrar  c: rango  s: buscar  e: exportar  ←/→: página  b: barra  t: tema  ctrl+l: cerrar sesión  q: salir")
	if a.toast == "" {
		return help
	}
	style := th.Toast
	if a.toastErr {
		style = th.Error
	}
	return style.Render(" "+a.toast) + "\n" + help
}

func (a *App) renderDashboard() string {
	th := a.theme
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		a.card("Registros", strconv.Itoa(a.ctrl.Total)),
		a.card("Página", fmt.Sprintf("%d / %d", a.ctrl.Page, a.ctrl.Pages)),
		a.card("Operador", a.session.User.Name),
		a.card("Rol", a.session.User.Role),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		th.Muted.Render("Pulsa 2 para abrir Reportes"),
	)
}

func (a *App) card(title, value string) string {
	th := a.theme
	return th.Card.Render(th.CardTitle.Render(title) + "\n" + th.CardValue.Render(value))
}

func (a *App) renderAjustes() string {
	th := a.theme
	sidebar := "expandida"
	if a.sidebarCollapsed {
		sidebar = "contraída"
	}
	lines := []string{
		th.Title.Render("Ajustes"),
		"",
		th.Subtitle.Render("Tema: ") + a.theme.Name + th.Muted.Render("  (t para cambiar)"),
		th.Subtitle.Render("Barra lateral: ") + sidebar + th.Muted.Render("  (b para alternar)"),
		th.Subtitle.Render("Servidor: ") + a.cfg.APIBaseURL,
		th.Subtitle.Render("Exportaciones: ") + a.exportDir,
		"",
		th.Subtitle.Render("Sesión: ") + a.session.User.Name +
			th.Muted.Render("  desde "+a.session.CreatedAt.Format("02/01/2006 15:04")),
		th.Muted.Render("ctrl+l cierra la sesión"),
	}
	return strings.Join(lines, "\n")
}
