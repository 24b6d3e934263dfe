package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorBackdrop = lipgloss.Color("#111827") // Gray 900, loading screen
	colorAccent   = lipgloss.Color("#FFFFFF")
	colorMuted    = lipgloss.Color("#B3B3B3") // White at ~70%
	colorDanger   = lipgloss.Color("#F87171") // Red 400, offline glyph
	colorError    = lipgloss.Color("#EF4444") // Red 500, error banner

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorBackdrop)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorBackdrop).
			Padding(0, 1)

	offlineStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorError).
			Bold(true).
			Padding(0, 1)
)
