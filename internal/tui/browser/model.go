// Package browser is the interactive terminal story browser started by
// `dsys browse`.
package browser

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/internal/stories"
)

// Pane identifies which half of the screen receives key presses.
type Pane int

const (
	PaneList Pane = iota
	PanePreview
)

// storyItem adapts a story entry to the bubbles list.
type storyItem struct {
	entry stories.Entry
}

func (i storyItem) Title() string       { return i.entry.Meta.Title + " / " + i.entry.DisplayName() }
func (i storyItem) Description() string { return i.entry.ID }
func (i storyItem) FilterValue() string { return i.entry.ID }

// Model is the browser state.
type Model struct {
	list     list.Model
	viewport viewport.Model

	focus    Pane
	showHTML bool
	status   string
	current  string

	width  int
	height int

	log *logger.Logger
}

// NewModel creates a browser over the registry's stories.
func NewModel(reg *stories.Registry, log *logger.Logger) Model {
	entries := reg.List()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, storyItem{entry: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Stories"
	l.SetShowHelp(false)

	m := Model{
		list:     l,
		viewport: viewport.New(0, 0),
		focus:    PaneList,
		showHTML: true,
		width:    80,
		height:   24,
		log:      log,
	}
	m.resize()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted story.
func (m Model) Selected() (stories.Entry, bool) {
	item, ok := m.list.SelectedItem().(storyItem)
	if !ok {
		return stories.Entry{}, false
	}
	return item.entry, true
}

// Focus returns the pane receiving key presses.
func (m Model) Focus() Pane {
	return m.focus
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Content returns what the preview pane currently shows.
func (m Model) Content() string {
	return m.current
}
