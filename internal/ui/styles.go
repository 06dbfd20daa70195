package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

// One style per status, matching the board colors of the original dashboard.
var (
	completedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#c8f7c5")).
			Foreground(lipgloss.Color("#1b4f72"))

	inProgressStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#58d68d")).
			Foreground(lipgloss.Color("#0b5345"))

	nextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#f9e79f")).
			Foreground(lipgloss.Color("#7d6608"))

	futureStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ecf0f1")).
			Foreground(lipgloss.Color("#2c3e50"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#111827")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#111827"))

	statusLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	errorLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b91c1c"))
)

func styleFor(status schedule.Status) lipgloss.Style {
	switch status {
	case schedule.StatusCompleted:
		return completedStyle
	case schedule.StatusInProgress:
		return inProgressStyle
	case schedule.StatusNext:
		return nextStyle
	default:
		return futureStyle
	}
}
