// Package tui provides the single-window terminal reader: book and chapter
// selection, a scrolling chapter view, a goto prompt for direct references,
// and substring search with click-through navigation into the chapter a
// result belongs to.
//
// The package is split across files in the usual Bubble Tea shape:
// - model.go: model state and construction
// - update.go: Update function and message handling
// - view.go: View function and rendering
// - styles.go: color palette and styles
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seanmcnealy/lectern/core/corpus"
)

// focusArea identifies which part of the window receives key input.
type focusArea int

const (
	focusReader focusArea = iota
	focusSearch
	focusResults
	focusGoto
)

// navMsg carries a navigation target picked from the search results. It is
// delivered as a message rather than applied inline so the jump happens on
// its own update pass, after the result list has finished rendering.
type navMsg struct {
	work    string
	chapter int
}

// model is the state of the reader window. The corpus itself is read-only;
// all mutation here is view state.
type model struct {
	corpus *corpus.Corpus

	// Reading position
	bookIdx int
	chapter int // 1-based

	// Bubble Tea components
	viewport viewport.Model
	search   textinput.Model
	gotoBox  textinput.Model

	// Goto state
	gotoErr string

	// Search state
	results   []*corpus.Verse
	resultIdx int
	searched  bool // a search ran since the query last changed

	// UI state
	focus  focusArea
	width  int
	height int
	ready  bool
}

// newModel builds the initial model positioned at the first work's first
// chapter.
func newModel(c *corpus.Corpus) *model {
	search := textinput.New()
	search.Placeholder = "Search for text..."
	search.CharLimit = 256

	gotoBox := textinput.New()
	gotoBox.Placeholder = "Go to reference, e.g. John 3:16"
	gotoBox.CharLimit = 64

	return &model{
		corpus:  c,
		chapter: 1,
		search:  search,
		gotoBox: gotoBox,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// currentWork returns the selected work, or nil for an empty corpus.
func (m *model) currentWork() *corpus.Work {
	if m.bookIdx < 0 || m.bookIdx >= len(m.corpus.Works) {
		return nil
	}
	return m.corpus.Works[m.bookIdx]
}

// refreshChapter re-renders the viewport from the current position.
func (m *model) refreshChapter() {
	w := m.currentWork()
	if w == nil {
		m.viewport.SetContent("No works loaded")
		return
	}
	m.viewport.SetContent(formatChapter(m.corpus.GetChapter(w.Name, m.chapter)))
	m.viewport.GotoTop()
}

// Run loads the reader over a finished corpus and blocks until exit. The
// corpus must be fully built before this is called; the reader never
// mutates it.
func Run(c *corpus.Corpus) error {
	m := newModel(c)
	m.refreshChapter()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
