package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// accentColors maps the config ui.accent value to a palette color.
var accentColors = map[string]lipgloss.Color{
	"pink":     colorPink,
	"mauve":    colorMauve,
	"red":      colorRed,
	"peach":    colorPeach,
	"yellow":   colorYellow,
	"green":    colorGreen,
	"teal":     colorTeal,
	"blue":     colorBlue,
	"lavender": colorLavender,
}

func accentColor(name string) lipgloss.Color {
	if c, ok := accentColors[name]; ok {
		return c
	}
	return colorPink
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

type styles struct {
	paneFocused   lipgloss.Style
	paneBlurred   lipgloss.Style
	title         lipgloss.Style
	selectedRow   lipgloss.Style
	row           lipgloss.Style
	dimmed        lipgloss.Style
	footer        lipgloss.Style
	searchLabel   lipgloss.Style
	statusError   lipgloss.Style
	statusLoading lipgloss.Style
}

func newStyles(accent lipgloss.Color) styles {
	return styles{
		paneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		paneBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1),
		title:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		selectedRow:   lipgloss.NewStyle().Foreground(colorBase).Background(accent),
		row:           lipgloss.NewStyle().Foreground(colorText),
		dimmed:        lipgloss.NewStyle().Foreground(colorOverlay0),
		footer:        lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0),
		searchLabel:   lipgloss.NewStyle().Foreground(accent),
		statusError:   lipgloss.NewStyle().Foreground(colorRed),
		statusLoading: lipgloss.NewStyle().Foreground(colorYellow),
	}
}
