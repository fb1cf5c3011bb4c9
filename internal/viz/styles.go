package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	// Strip tints: idle bars, comparison probes, fresh placements.
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	compareStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	swapStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("48"))
)
