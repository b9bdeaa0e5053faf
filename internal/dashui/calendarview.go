package dashui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modepsa/hornotui/internal/calendar"
	"github.com/modepsa/hornotui/internal/report"
)

type pickerAction int

const (
	pickerNone pickerAction = iota
	pickerClosed
	pickerCompleted
	pickerCleared
)

// rangePicker is the modal date-range selector: two month panels with
// independent cursors over one shared selection, driven by a keyboard
// hover cursor instead of the mouse.
type rangePicker struct {
	left    calendar.Cursor
	right   calendar.Cursor
	onRight bool

	rng   *calendar.Range
	hover time.Time

	jumping bool
	jump    textinput.Model
}

func newRangePicker(rng *calendar.Range, now time.Time) *rangePicker {
	jump := textinput.New()
	jump.Prompt = "Ir a: "
	jump.Placeholder = "mm/aaaa"
	jump.CharLimit = 7
	jump.Width = 8

	hover := calendar.Truncate(now)
	if rng.From != nil {
		hover = calendar.Truncate(*rng.From)
	}
	left := calendar.CursorAt(hover)
	return &rangePicker{
		left:  left,
		right: left.Next(),
		rng:   rng,
		hover: hover,
		jump:  jump,
	}
}

func (p *rangePicker) focused() calendar.Cursor {
	if p.onRight {
		return p.right
	}
	return p.left
}

func (p *rangePicker) setFocused(c calendar.Cursor) {
	if p.onRight {
		p.right = c
	} else {
		p.left = c
	}
}

// moveHover shifts the hover cursor by days, dragging the focused panel
// along when the hover leaves its month.
func (p *rangePicker) moveHover(days int) {
	p.hover = p.hover.AddDate(0, 0, days)
	if cur := p.focused(); !cur.Contains(p.hover) {
		p.setFocused(calendar.CursorAt(p.hover))
	}
}

// clampHover snaps the hover day into the focused panel's month.
func (p *rangePicker) clampHover() {
	cur := p.focused()
	day := p.hover.Day()
	if max := calendar.DaysIn(cur.Year, cur.Month); day > max {
		day = max
	}
	p.hover = time.Date(cur.Year, cur.Month, day, 0, 0, 0, 0, time.Local)
}

func (p *rangePicker) stepMonth(back bool) {
	cur := p.focused()
	if back {
		cur = cur.Prev()
	} else {
		cur = cur.Next()
	}
	p.setFocused(cur)
	p.clampHover()
}

func (p *rangePicker) stepYear(back bool) {
	cur := p.focused()
	if back {
		cur = cur.PrevYear()
	} else {
		cur = cur.NextYear()
	}
	p.setFocused(cur)
	p.clampHover()
}

func (p *rangePicker) handleKey(msg tea.KeyMsg) (pickerAction, tea.Cmd) {
	if p.jumping {
		return p.handleJumpKey(msg)
	}
	switch msg.String() {
	case "esc":
		return pickerClosed, nil
	case "tab":
		p.onRight = !p.onRight
		p.clampHover()
	case "left":
		p.moveHover(-1)
	case "right":
		p.moveHover(1)
	case "up":
		p.moveHover(-7)
	case "down":
		p.moveHover(7)
	case "[":
		p.stepMonth(true)
	case "]":
		p.stepMonth(false)
	case "{":
		p.stepYear(true)
	case "}":
		p.stepYear(false)
	case "g":
		p.jumping = true
		p.jump.SetValue("")
		return pickerNone, p.jump.Focus()
	case "x":
		p.rng.Clear()
		return pickerCleared, nil
	case "enter", " ":
		if p.rng.Click(p.hover) {
			return pickerCompleted, nil
		}
	}
	return pickerNone, nil
}

func (p *rangePicker) handleJumpKey(msg tea.KeyMsg) (pickerAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.jumping = false
		p.jump.Blur()
		return pickerNone, nil
	case "enter":
		p.applyJump(p.jump.Value())
		p.jumping = false
		p.jump.Blur()
		return pickerNone, nil
	}
	var cmd tea.Cmd
	p.jump, cmd = p.jump.Update(msg)
	return pickerNone, cmd
}

// applyJump moves the focused panel to "mm/aaaa", "mm" or "aaaa".
// Unparseable input is ignored.
func (p *rangePicker) applyJump(value string) {
	value = strings.TrimSpace(value)
	cur := p.focused()
	if month, year, ok := parseMonthYear(value); ok {
		p.setFocused(cur.WithYear(year).WithMonth(month))
	} else if n, err := strconv.Atoi(value); err == nil {
		switch {
		case n >= 1 && n <= 12:
			p.setFocused(cur.WithMonth(time.Month(n)))
		case n >= 1970:
			p.setFocused(cur.WithYear(n))
		default:
			return
		}
	} else {
		return
	}
	p.clampHover()
}

func parseMonthYear(value string) (time.Month, int, bool) {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil || y < 1970 {
		return 0, 0, false
	}
	return time.Month(m), y, true
}

func (p *rangePicker) view(th Theme) string {
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		p.panelView(th, p.left, !p.onRight),
		"   ",
		p.panelView(th, p.right, p.onRight),
	)
	lines := []string{
		th.Title.Render("Rango de fechas"),
		"",
		panels,
		"",
		p.summaryLine(th),
	}
	if p.jumping {
		lines = append(lines, p.jump.View())
	} else {
		lines = append(lines,
			th.Muted.Render("enter: elegir día  tab: panel  [/]: mes  {/}: año"),
			th.Muted.Render("g: ir a  x: limpiar  esc: cerrar"),
		)
	}
	return th.Modal.Render(strings.Join(lines, "\n"))
}

func (p *rangePicker) summaryLine(th Theme) string {
	desde, hasta := report.Missing, report.Missing
	if p.rng.From != nil {
		desde = report.FormatRangeDate(p.rng.From)
	}
	if p.rng.To != nil {
		hasta = report.FormatRangeDate(p.rng.To)
	}
	return th.Subtitle.Render("Desde: ") + desde + th.Subtitle.Render("  Hasta: ") + hasta
}

func (p *rangePicker) panelView(th Theme, cur calendar.Cursor, focused bool) string {
	title := th.Subtitle.Render(cur.Title())
	if focused {
		title = th.Accent.Render(cur.Title())
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(28, lipgloss.Center, title))
	b.WriteString("\n")
	for _, name := range calendar.DayNames {
		b.WriteString(th.Muted.Render(name))
		b.WriteString(" ")
	}

	cells := calendar.Grid(cur.Year, cur.Month)
	for i, c := range cells {
		if i%7 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.cellView(th, c, focused))
	}
	return b.String()
}

func (p *rangePicker) cellView(th Theme, c calendar.Cell, focused bool) string {
	if c.Blank() {
		return "    "
	}
	text := fmt.Sprintf("%3d", c.Day)
	style := lipgloss.NewStyle()
	switch {
	case p.rng.Selected(c.Date):
		style = th.DaySelected
	case p.rng.InSpan(c.Date, &p.hover):
		style = th.DayInRange
	}
	if focused && c.Date.Equal(p.hover) {
		style = style.Underline(true).Bold(true)
	}
	return style.Render(text) + " "
}
