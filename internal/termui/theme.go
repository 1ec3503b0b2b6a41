// Package termui renders an analysis for the terminal.
package termui

import "github.com/charmbracelet/lipgloss"

var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Surface1 = lipgloss.Color("#45475a")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Score = lipgloss.NewStyle().Foreground(Green)

	levelStyles = map[string]lipgloss.Style{
		"info":    lipgloss.NewStyle().Foreground(Sapphire),
		"warning": lipgloss.NewStyle().Foreground(Yellow),
		"error":   lipgloss.NewStyle().Foreground(Red).Bold(true),
	}
)
