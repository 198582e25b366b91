package viz

import "github.com/charmbracelet/lipgloss"

var (
	// Panel border for result blocks
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Value / label pair used in result rows
	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusDiverged = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)
