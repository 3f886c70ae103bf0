// Package ref parses human-readable scripture references like
// "Genesis 1:1", "1John 3" or "Psalms 23:1-6" into their parts. It serves
// the CLI and the reader's goto prompt; the loader's line locators have
// their own fixed split rule and never come through here.
package ref

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	lecterr "github.com/seanmcnealy/lectern/core/errors"
)

// Ref is a parsed reference. Chapter 0 means a whole-work reference,
// Verse 0 a whole-chapter one.
type Ref struct {
	Work     string
	Chapter  int
	Verse    int
	VerseEnd int
}

// refGrammar is the participle grammar for references.
// Examples: "Genesis", "Genesis 1", "Genesis 1:1", "1John 3:16-18"
//
//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	WorkPrefix string       `@Int?`
	WorkName   string       `@Ident`
	ChapterRef *chapterPart `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterPart struct {
	Chapter  int        `@Int`
	VerseRef *versePart `( ":" @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Verse int  `@Int`
	Range *int `( "-" @Int )?`
}

// refLexer defines the lexer for references. Numbered works ("1John") lex
// as Int followed by Ident and are glued back together.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// refParser is the participle parser for references.
var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a reference string.
// Supported forms:
//   - "Genesis" (work only)
//   - "Genesis 1" (work and chapter)
//   - "Genesis 1:1" (work, chapter, and verse)
//   - "Genesis 1:1-5" (verse range)
//   - "1John 3:16" (numbered work, with or without the space)
func Parse(s string) (*Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, lecterr.NewParse("reference", s, "empty reference")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return nil, &lecterr.ParseError{
			Format:  "reference",
			Input:   s,
			Message: "expected <work> [<chapter>[:<verse>[-<end>]]]",
			Err:     err,
		}
	}

	r := &Ref{
		Work: parsed.WorkPrefix + parsed.WorkName,
	}

	if parsed.ChapterRef != nil {
		r.Chapter = parsed.ChapterRef.Chapter

		if parsed.ChapterRef.VerseRef != nil {
			r.Verse = parsed.ChapterRef.VerseRef.Verse

			if parsed.ChapterRef.VerseRef.Range != nil {
				r.VerseEnd = *parsed.ChapterRef.VerseRef.Range
			}
		}
	}

	return r, nil
}

// String renders the reference back into its canonical text form.
func (r *Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Work)

	if r.Chapter > 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(r.Chapter))

		if r.Verse > 0 {
			sb.WriteString(":")
			sb.WriteString(strconv.Itoa(r.Verse))

			if r.VerseEnd > 0 {
				sb.WriteString("-")
				sb.WriteString(strconv.Itoa(r.VerseEnd))
			}
		}
	}

	return sb.String()
}

// IsRange returns true if this reference spans multiple verses.
func (r *Ref) IsRange() bool {
	return r.VerseEnd > 0 && r.VerseEnd > r.Verse
}
