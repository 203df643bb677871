package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhaseem/taskman/roster"
)

var (
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// StatusBadge renders a colored status label for terminal tables.
// Colors degrade to plain text on non-color terminals.
func StatusBadge(status roster.Status) string {
	switch status {
	case roster.StatusCompleted:
		return completedStyle.Render(string(status))
	default:
		return pendingStyle.Render(string(status))
	}
}
