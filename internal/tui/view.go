package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/seanmcnealy/lectern/core/corpus"
)

// View renders the whole window. Rendering is pure: every value shown
// comes from the model's view state or from read-only corpus queries.
func (m *model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Lectern"))
	b.WriteString("\n")
	b.WriteString(m.buildStatus())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.buildSeparator())
	b.WriteString("\n")
	if m.focus == focusGoto {
		b.WriteString(searchBoxStyle.Render(m.gotoBox.View()))
	} else {
		b.WriteString(searchBoxStyle.Render(m.search.View()))
	}
	if panel := m.buildResults(); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
	}
	b.WriteString("\n")
	b.WriteString(m.buildFooter())
	return b.String()
}

// buildStatus renders the current reading position.
func (m *model) buildStatus() string {
	w := m.currentWork()
	if w == nil {
		return statusStyle.Render("No works loaded")
	}
	return statusStyle.Render(fmt.Sprintf("%s — Chapter %d of %d", w.Name, m.chapter, w.ChapterCount()))
}

func (m *model) buildSeparator() string {
	width := m.width
	if width < 1 {
		width = 1
	}
	return separatorStyle.Render(strings.Repeat("─", width))
}

// buildResults renders the search result panel: a count line plus a window
// of results around the selection.
func (m *model) buildResults() string {
	if !m.searched && len(m.results) == 0 {
		return ""
	}
	if len(m.results) == 0 {
		return hintStyle.Render("No results")
	}

	var b strings.Builder
	b.WriteString(hintStyle.Render(fmt.Sprintf("Found %d results:", len(m.results))))

	start := 0
	if m.resultIdx >= resultWindow {
		start = m.resultIdx - resultWindow + 1
	}
	end := start + resultWindow
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := start; i < end; i++ {
		v := m.results[i]
		line := fmt.Sprintf("%s %d:%d - %s", v.Work, v.Chapter, v.Number, v.Text)
		if m.width > 4 {
			line = runewidth.Truncate(line, m.width-4, "…")
		}
		b.WriteString("\n")
		if i == m.resultIdx && m.focus == focusResults {
			b.WriteString(selectedResultStyle.Render("> " + line))
		} else {
			b.WriteString(resultStyle.Render("  " + line))
		}
	}
	return b.String()
}

func (m *model) buildFooter() string {
	switch m.focus {
	case focusSearch:
		return hintStyle.Render("Enter to search • Esc to cancel")
	case focusGoto:
		if m.gotoErr != "" {
			return hintStyle.Render(m.gotoErr)
		}
		return hintStyle.Render("Enter to jump • Esc to cancel")
	case focusResults:
		return hintStyle.Render("↑/↓ select • Enter to open • / new search • Esc back")
	default:
		return hintStyle.Render("[/] chapter • {/} book • ↑/↓ scroll • / search • g goto • q quit")
	}
}

// formatChapter renders a chapter as "N text" paragraphs, one per verse.
func formatChapter(ch *corpus.Chapter) string {
	if ch == nil {
		return "Chapter not found"
	}
	var b strings.Builder
	for _, v := range ch.Verses {
		fmt.Fprintf(&b, "%d %s\n\n", v.Number, v.Text)
	}
	return b.String()
}
