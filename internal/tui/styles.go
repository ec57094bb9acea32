package tui

import "github.com/charmbracelet/lipgloss"

// Style definitions
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	DayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Bold(true)

	DayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cccccc")).
			Padding(0, 1)

	DayOutsideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444")).
			Padding(0, 1)

	DayCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#0088ff")).
			Bold(true).
			Padding(0, 1)

	DayTodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff00")).
			Bold(true).
			Padding(0, 1)

	EventMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0088ff")).
			Padding(1, 2)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	FieldActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#0088ff"))

	FieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cccccc"))

	AgendaTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0088ff"))

	StatusPendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
	StatusApprovedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))
	StatusRejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))

	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))
)
