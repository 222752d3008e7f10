package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designsystem/internal/preview"
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
)

const (
	minListWidth = 28
	footerHeight = 2
	// border plus horizontal padding of a panel
	panelFrame = 4
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		return m.forward(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "enter":
		if m.focus == PaneList {
			m.focus = PanePreview
		} else {
			m.focus = PaneList
		}
		return m, nil
	case "h":
		m.showHTML = !m.showHTML
		m.refresh()
		return m, nil
	case "x":
		m.click()
		return m, nil
	}

	return m.forward(msg)
}

// forward routes a message to the focused component and re-renders the
// preview when the selection moves.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == PanePreview {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.refresh()
	}
	return m, cmd
}

// click dispatches a click event to the root element of the selected story.
func (m *Model) click() {
	entry, ok := m.Selected()
	if !ok {
		return
	}
	root, ok := entry.Node().(*dom.Element)
	if ok && root.Dispatch(dom.Event{Type: dom.EventClick}) {
		m.status = "click handled by " + entry.ID
		m.log.With("story", entry.ID).Debug("click dispatched")
		return
	}
	m.status = "no click handler on " + entry.ID
}

func (m *Model) resize() {
	listWidth := m.width / 3
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	bodyHeight := m.height - footerHeight - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	m.list.SetSize(listWidth, bodyHeight)

	previewWidth := m.width - listWidth - panelFrame*2
	if previewWidth < 1 {
		previewWidth = 1
	}
	m.viewport.Width = previewWidth
	m.viewport.Height = bodyHeight
}

// refresh re-renders the selected story into the viewport.
func (m *Model) refresh() {
	m.current = m.renderSelected()
	m.viewport.SetContent(m.current)
	m.viewport.GotoTop()
}

func (m Model) renderSelected() string {
	entry, ok := m.Selected()
	if !ok {
		return "No stories registered."
	}

	node := entry.Node()

	var b strings.Builder
	b.WriteString(headingStyle.Render(entry.Meta.Title + " / " + entry.DisplayName()))
	b.WriteString("\n")
	b.WriteString(preview.Render(node))
	b.WriteString("\n")

	if m.showHTML {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("HTML"))
		b.WriteString("\n")
		out, err := dom.RenderString(node)
		if err != nil {
			b.WriteString(errorStyle.Render(err.Error()))
		} else {
			b.WriteString(out)
		}
		b.WriteString("\n")
	}
	return b.String()
}
