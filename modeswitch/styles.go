package modeswitch

import "github.com/charmbracelet/lipgloss"

var (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Styles controls how the tab bar is drawn.
type Styles struct {
	Bar       lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Separator lipgloss.Style
}

// DefaultStyles returns the styles used when no [WithStyles] option is given.
func DefaultStyles() Styles {
	return Styles{
		Bar:       lipgloss.NewStyle(),
		Active:    lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorMauve).Padding(0, 1),
		Inactive:  lipgloss.NewStyle().Foreground(colorOverlay1).Padding(0, 1),
		Separator: lipgloss.NewStyle().Foreground(colorSurface2),
	}
}

// PlainStyles returns styles without colors or padding, for tests and
// terminals without color support.
func PlainStyles() Styles {
	return Styles{
		Bar:       lipgloss.NewStyle(),
		Active:    lipgloss.NewStyle(),
		Inactive:  lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
	}
}
