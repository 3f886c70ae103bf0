// Package corpus holds the in-memory scripture model: an ordered tree of
// works, each owning a dense array of chapters, each owning its verses in
// file order. The tree is built once by core/loader and never mutated
// afterward; every query here is a read-only linear scan.
package corpus

import "strings"

// Division identifies which of the two top-level groupings a work was
// loaded from.
type Division string

// Division constants.
const (
	DivisionOld Division = "old"
	DivisionNew Division = "new"
)

// Verse is a single numbered line of text within a chapter. Verse numbers
// come straight from the source file and are not required to be contiguous
// or unique within a chapter.
type Verse struct {
	Work    string
	Chapter int
	Number  int
	Text    string
}

// Chapter is an ordered run of verses. Verses keep the order they appeared
// in the source file, which is not guaranteed to be sorted by number.
// A chapter created only to fill a numbering gap has no verses.
type Chapter struct {
	Number int
	Verses []Verse
}

// Work is a single named book. Its chapter slice is dense: chapter N lives
// at index N-1, with gap chapters inserted by the loader as needed.
type Work struct {
	Name       string
	Division   Division
	SourceHash string // BLAKE3 hex digest of the originating file
	Chapters   []Chapter
}

// ChapterCount returns the number of chapters, counting gap fills.
func (w *Work) ChapterCount() int {
	return len(w.Chapters)
}

// GetChapter returns the chapter with the given number, or nil.
func (w *Work) GetChapter(number int) *Chapter {
	for i := range w.Chapters {
		if w.Chapters[i].Number == number {
			return &w.Chapters[i]
		}
	}
	return nil
}

// Corpus owns every loaded work in canonical order. It is logically
// immutable once published; callers may share it freely across reads.
type Corpus struct {
	Works []*Work
}

// Work returns the first work with the given name, or nil. Duplicate names
// are possible when two divisions ship a file with the same base name; the
// first match in canonical order wins.
func (c *Corpus) Work(name string) *Work {
	for _, w := range c.Works {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// GetChapter returns the named work's chapter, or nil when either the work
// or the chapter does not exist.
func (c *Corpus) GetChapter(workName string, chapter int) *Chapter {
	w := c.Work(workName)
	if w == nil {
		return nil
	}
	return w.GetChapter(chapter)
}

// GetVerse returns a single verse, or nil when any level of the lookup
// fails to match. With duplicate verse numbers the first occurrence in
// file order wins.
func (c *Corpus) GetVerse(workName string, chapter, verse int) *Verse {
	ch := c.GetChapter(workName, chapter)
	if ch == nil {
		return nil
	}
	for i := range ch.Verses {
		if ch.Verses[i].Number == verse {
			return &ch.Verses[i]
		}
	}
	return nil
}

// Search returns every verse whose text contains the query as a
// case-insensitive literal substring, in corpus traversal order (works in
// canonical order, chapters and verses in stored order). The empty query
// matches every verse. Each call re-scans the whole corpus; there is no
// index and no result limit.
func (c *Corpus) Search(query string) []*Verse {
	query = strings.ToLower(query)
	var results []*Verse
	for _, w := range c.Works {
		for i := range w.Chapters {
			ch := &w.Chapters[i]
			for j := range ch.Verses {
				if strings.Contains(strings.ToLower(ch.Verses[j].Text), query) {
					results = append(results, &ch.Verses[j])
				}
			}
		}
	}
	return results
}

// VerseCount returns the total number of verses across all works.
func (c *Corpus) VerseCount() int {
	n := 0
	for _, w := range c.Works {
		for i := range w.Chapters {
			n += len(w.Chapters[i].Verses)
		}
	}
	return n
}
