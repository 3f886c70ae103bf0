package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seanmcnealy/lectern/core/ref"
)

// resultWindow is how many search results are visible at once.
const resultWindow = 8

// Update handles all state updates for the reader.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if !m.ready {
			m.ready = true
			m.refreshChapter()
		}
		return m, nil

	case navMsg:
		// Deferred jump from a search result, applied on its own pass.
		for i, w := range m.corpus.Works {
			if w.Name == msg.work {
				m.bookIdx = i
				break
			}
		}
		m.chapter = msg.chapter
		m.focus = focusReader
		m.refreshChapter()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusResults:
		return m.handleResultsKey(msg)
	case focusGoto:
		return m.handleGotoKey(msg)
	default:
		return m.handleReaderKey(msg)
	}
}

func (m *model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		m.search.Focus()
		return m, nil
	case "g":
		m.focus = focusGoto
		m.gotoErr = ""
		m.gotoBox.Focus()
		return m, nil
	case "left", "[":
		if m.chapter > 1 {
			m.chapter--
			m.refreshChapter()
		}
		return m, nil
	case "right", "]":
		if w := m.currentWork(); w != nil && m.chapter < w.ChapterCount() {
			m.chapter++
			m.refreshChapter()
		}
		return m, nil
	case "{", "p":
		if m.bookIdx > 0 {
			m.bookIdx--
			m.chapter = 1
			m.refreshChapter()
		}
		return m, nil
	case "}", "n":
		if m.bookIdx < len(m.corpus.Works)-1 {
			m.bookIdx++
			m.chapter = 1
			m.refreshChapter()
		}
		return m, nil
	case "tab":
		if len(m.results) > 0 {
			m.focus = focusResults
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = focusReader
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.results = m.corpus.Search(m.search.Value())
		m.resultIdx = 0
		m.searched = true
		m.search.Blur()
		m.layout()
		if len(m.results) > 0 {
			m.focus = focusResults
		} else {
			m.focus = focusReader
		}
		return m, nil
	}

	m.searched = false
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = focusReader
		m.gotoBox.Blur()
		m.gotoErr = ""
		return m, nil
	case tea.KeyEnter:
		r, err := ref.Parse(m.gotoBox.Value())
		if err != nil {
			m.gotoErr = "Unrecognized reference"
			return m, nil
		}
		work, ok := m.resolveWork(r.Work)
		if !ok {
			m.gotoErr = "Unknown work: " + r.Work
			return m, nil
		}
		chapter := r.Chapter
		if chapter == 0 {
			chapter = 1
		}
		m.focus = focusReader
		m.gotoBox.Blur()
		m.gotoBox.SetValue("")
		m.gotoErr = ""
		target := navMsg{work: work, chapter: chapter}
		return m, func() tea.Msg { return target }
	}

	m.gotoErr = ""
	var cmd tea.Cmd
	m.gotoBox, cmd = m.gotoBox.Update(msg)
	return m, cmd
}

// resolveWork matches a parsed work name against the loaded works,
// ignoring case so "john 3" finds John.
func (m *model) resolveWork(name string) (string, bool) {
	for _, w := range m.corpus.Works {
		if strings.EqualFold(w.Name, name) {
			return w.Name, true
		}
	}
	return "", false
}

func (m *model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.focus = focusReader
		return m, nil
	case "/":
		m.focus = focusSearch
		m.search.Focus()
		return m, nil
	case "up", "k":
		if m.resultIdx > 0 {
			m.resultIdx--
		}
		return m, nil
	case "down", "j":
		if m.resultIdx < len(m.results)-1 {
			m.resultIdx++
		}
		return m, nil
	case "enter":
		if m.resultIdx < len(m.results) {
			v := m.results[m.resultIdx]
			target := navMsg{work: v.Work, chapter: v.Chapter}
			return m, func() tea.Msg { return target }
		}
		return m, nil
	}
	return m, nil
}

// layout sizes the viewport against the fixed chrome: header, status line,
// search line, result panel, footer.
func (m *model) layout() {
	chrome := 5
	if len(m.results) > 0 || m.searched {
		chrome += resultWindow + 1
	}
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
	m.search.Width = m.width - 4
	m.gotoBox.Width = m.width - 4
}
