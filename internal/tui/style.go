package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#15202b")).
			Background(lipgloss.Color("#7bc96f")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7bc96f")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#d7263d", Dark: "#ff5c70"}).
			Render

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#2a9d8f", Dark: "#56d6c2"}).
				Render

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)
