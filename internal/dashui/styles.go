package dashui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles for one color mode. The selected theme name
// is persisted across runs.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Accent   lipgloss.Style

	ActiveNav   lipgloss.Style
	InactiveNav lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardValue lipgloss.Style

	TableMuted lipgloss.Style
	Modal      lipgloss.Style
	Toast      lipgloss.Style

	DaySelected lipgloss.Style
	DayInRange  lipgloss.Style
	DayHover    lipgloss.Style

	PageActive   lipgloss.Style
	PageInactive lipgloss.Style
}

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		ActiveNav: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")),
		InactiveNav: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")),
		CardTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		CardValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		TableMuted: lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2),
		Toast:        lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		DaySelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0B0B0B")).Background(lipgloss.Color("#2F6FDE")).Bold(true),
		DayInRange:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9FC1F7")).Background(lipgloss.Color("#1B3A6B")),
		DayHover:     lipgloss.NewStyle().Underline(true),
		PageActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0B0B0B")).Background(lipgloss.Color("#C89A3A")).Padding(0, 1),
		PageInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1),
	}
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A7A")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8A6D1F")),
		ActiveNav: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#8A6D1F")),
		InactiveNav: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A5A5A")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C0C0C0")),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C0C0C0")),
		CardTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A")),
		CardValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Bold(true),
		TableMuted: lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#8A6D1F")).
			Padding(1, 2),
		Toast:        lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")),
		DaySelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#1F5ACB")).Bold(true),
		DayInRange:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1B3A6B")).Background(lipgloss.Color("#CFE0FA")),
		DayHover:     lipgloss.NewStyle().Underline(true),
		PageActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#8A6D1F")).Padding(0, 1),
		PageInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A")).Padding(0, 1),
	}
}

// ThemeByName maps a persisted theme name to its palette; unknown
// names fall back to light.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}
