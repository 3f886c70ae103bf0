package corpus

import "sort"

// canonicalNames lists the 66 work names in traditional order, both
// divisions. Names match source file base names, so compound titles carry
// no spaces ("1Samuel", "SongofSolomon").
var canonicalNames = []string{
	// Old
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1Samuel", "2Samuel",
	"1Kings", "2Kings", "1Chronicles", "2Chronicles",
	"Ezra", "Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "SongofSolomon", "Isaiah", "Jeremiah",
	"Lamentations", "Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk", "Zephaniah",
	"Haggai", "Zechariah", "Malachi",

	// New
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1Corinthians", "2Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1Thessalonians", "2Thessalonians",
	"1Timothy", "2Timothy", "Titus", "Philemon", "Hebrews",
	"James", "1Peter", "2Peter", "1John", "2John", "3John",
	"Jude", "Revelation",
}

// unknownRank sorts works missing from the canonical table after every
// known work.
const unknownRank = 999

// canonicalRank maps work name to canonical position. Pure reference data,
// built once at process start and read-only thereafter.
var canonicalRank = func() map[string]int {
	m := make(map[string]int, len(canonicalNames))
	for i, name := range canonicalNames {
		m[name] = i
	}
	return m
}()

// Rank returns the canonical position of a work name. Names outside the
// table get unknownRank, so they sort last.
func Rank(name string) int {
	if r, ok := canonicalRank[name]; ok {
		return r
	}
	return unknownRank
}

// SortCanonical orders works by the canonical table. The sort is stable, so
// works sharing a rank (in practice, only unknown names) keep their
// discovery order relative to each other.
func SortCanonical(works []*Work) {
	sort.SliceStable(works, func(i, j int) bool {
		return Rank(works[i].Name) < Rank(works[j].Name)
	})
}
