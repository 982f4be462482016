package tui

import (
	"themectl/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles are derived from the previewed scheme, so toggling D repaints the
// frame with the navigation colors the app would use.

func frameStyle(nav theme.NavigationColors) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(nav.Background)).
		Foreground(lipgloss.Color(nav.Text)).
		Padding(0, 1)
}

func titleStyle(nav theme.NavigationColors) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(nav.Primary)).
		Bold(true)
}

func textStyle(nav theme.NavigationColors) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(nav.Text))
}

func mutedStyle(nav theme.NavigationColors) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(nav.Border))
}

func selectedStyle(nav theme.NavigationColors) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(nav.Primary)).
		Bold(true)
}

func statusStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}
