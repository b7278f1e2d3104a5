package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	importantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	demoNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	apiNoticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	starOn  = "★"
	starOff = "☆"
)

func panelString(inner string) string {
	return boxStyle.Render(inner)
}
