package browser

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	errorColor   = lipgloss.Color("196") // Red

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(primaryColor)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
