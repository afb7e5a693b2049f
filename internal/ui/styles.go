package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the CLI output.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Bold(true).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")) // Cyan/Teal

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	imprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
)

// StatusStyle returns the style for a comparison status token.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "FAIL":
		return failStyle
	case "IMPR":
		return imprStyle
	default:
		return passStyle
	}
}

// Header renders a section header.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Summary renders the pretty one-line benchmark summary.
func Summary(text string) string {
	return summaryStyle.Render(text)
}
