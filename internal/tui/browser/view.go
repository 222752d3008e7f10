package browser

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the list and preview panes side by side.
func (m Model) View() string {
	listStyle, previewStyle := panelStyle, panelStyle
	if m.focus == PaneList {
		listStyle = focusedPanelStyle
	} else {
		previewStyle = focusedPanelStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.list.View()),
		previewStyle.Render(m.viewport.View()),
	)

	footer := footerStyle.Render("↑/↓ select • tab switch pane • h toggle html • x click • / filter • q quit")
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
