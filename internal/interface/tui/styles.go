package tui

import "github.com/charmbracelet/lipgloss"

// Global styles used across views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("246"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("170"))

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("170")).
				Bold(true)

	// Summary card styles
	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	cardValueStyle = lipgloss.NewStyle().
			Bold(true)

	overBudgetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	underBudgetStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("120"))

	// Error and status line styles
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	validationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Width(12)

	formFocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170")).
				Width(12)
)
