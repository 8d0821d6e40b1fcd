package tui

import (
	"github.com/charmbracelet/lipgloss"

	"chi-calculator/internal/presentation"
)

// palette is the set of colours one theme renders with.
type palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
}

var palettes = map[presentation.Theme]palette{
	presentation.ThemeDark: {
		Background: lipgloss.Color("#1c1c1f"),
		Text:       lipgloss.Color("#e4e4e7"),
		Muted:      lipgloss.Color("#71717a"),
		Accent:     lipgloss.Color("#f59e0b"),
		Border:     lipgloss.Color("#3f3f46"),
		Error:      lipgloss.Color("#ef4444"),
	},
	presentation.ThemeLight: {
		Background: lipgloss.Color("#fafafa"),
		Text:       lipgloss.Color("#18181b"),
		Muted:      lipgloss.Color("#a1a1aa"),
		Accent:     lipgloss.Color("#2563eb"),
		Border:     lipgloss.Color("#d4d4d8"),
		Error:      lipgloss.Color("#dc2626"),
	},
}

const (
	displayWidth = 26
	drawerWidth  = 30
)

type styles struct {
	App        lipgloss.Style
	Expression lipgloss.Style
	Display    lipgloss.Style
	Legend     lipgloss.Style
	Status     lipgloss.Style
	Drawer     lipgloss.Style
	Collapsed  lipgloss.Style
	Title      lipgloss.Style
	Entry      lipgloss.Style
	Empty      lipgloss.Style
}

func stylesFor(theme presentation.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[presentation.ThemeDark]
	}

	return styles{
		App: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text).
			Padding(1, 2),
		Expression: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(displayWidth).
			Align(lipgloss.Right),
		Display: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Width(displayWidth).
			Align(lipgloss.Right).
			Padding(0, 1),
		Legend: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		Status: lipgloss.NewStyle().
			Foreground(p.Error),
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Border).
			MarginLeft(2).
			PaddingLeft(1).
			Width(drawerWidth),
		Collapsed: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Muted).
			MarginLeft(2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			MarginBottom(1),
		Entry: lipgloss.NewStyle().
			Foreground(p.Text),
		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
	}
}
