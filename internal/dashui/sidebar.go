package dashui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/modepsa/hornotui/internal/model"
)

const (
	sidebarWidth          = 22
	sidebarCollapsedWidth = 6
)

type menuItem struct {
	icon  string
	label string
}

var menuItems = []menuItem{
	{icon: "⌂", label: "Dashboard"},
	{icon: "▤", label: "Reportes"},
	{icon: "⚙", label: "Ajustes"},
}

// renderSidebar draws the navigation column. Collapsed it keeps only
// the icons, mirroring the web client's burger toggle.
func renderSidebar(th Theme, active int, collapsed bool, user model.User, height int) string {
	width := sidebarWidth
	if collapsed {
		width = sidebarCollapsedWidth
	}

	var lines []string
	brand := "MODEPSA"
	if collapsed {
		brand = "MP"
	}
	lines = append(lines, th.Accent.Render(brand), "")

	for i, item := range menuItems {
		label := item.icon
		if !collapsed {
			label = item.icon + " " + item.label
		}
		style := th.InactiveNav
		if i == active {
			style = th.ActiveNav
		}
		lines = append(lines, style.Width(width-4).Render(label))
	}

	body := strings.Join(lines, "\n")
	footer := renderSidebarUser(th, user, collapsed, width)

	col := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(th.Muted.GetForeground())
	gap := height - lipgloss.Height(body) - lipgloss.Height(footer) - 2
	if gap < 1 {
		gap = 1
	}
	return col.Render(body + strings.Repeat("\n", gap) + footer)
}

func renderSidebarUser(th Theme, user model.User, collapsed bool, width int) string {
	if collapsed {
		return th.Accent.Render("(" + user.Avatar + ")")
	}
	name := runewidth.Truncate(user.Name, width-4, "…")
	return th.Accent.Render("("+user.Avatar+") ") + th.Subtitle.Render(name) + "\n" +
		th.Muted.Render(runewidth.Truncate(user.Role, width-4, "…"))
}
