package ref

import (
	"testing"

	lecterr "github.com/seanmcnealy/lectern/core/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Ref
	}{
		{"Genesis", Ref{Work: "Genesis"}},
		{"Genesis 1", Ref{Work: "Genesis", Chapter: 1}},
		{"Genesis 1:1", Ref{Work: "Genesis", Chapter: 1, Verse: 1}},
		{"John 3:16", Ref{Work: "John", Chapter: 3, Verse: 16}},
		{"1John 3:16", Ref{Work: "1John", Chapter: 3, Verse: 16}},
		{"1 John 3:16", Ref{Work: "1John", Chapter: 3, Verse: 16}},
		{"Psalms 23:1-6", Ref{Work: "Psalms", Chapter: 23, Verse: 1, VerseEnd: 6}},
		{"SongofSolomon 2:4", Ref{Work: "SongofSolomon", Chapter: 2, Verse: 4}},
		{"  Genesis 1:1  ", Ref{Work: "Genesis", Chapter: 1, Verse: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if *got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"42",
		"Genesis 1:1:1",
		"Genesis one",
		":3",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", input)
			}
			var parseErr *lecterr.ParseError
			if !lecterr.As(err, &parseErr) {
				t.Errorf("error is %T, want *errors.ParseError", err)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{Ref{Work: "Genesis"}, "Genesis"},
		{Ref{Work: "Genesis", Chapter: 1}, "Genesis 1"},
		{Ref{Work: "Genesis", Chapter: 1, Verse: 1}, "Genesis 1:1"},
		{Ref{Work: "Psalms", Chapter: 23, Verse: 1, VerseEnd: 6}, "Psalms 23:1-6"},
	}
	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsRange(t *testing.T) {
	r := Ref{Work: "Psalms", Chapter: 23, Verse: 1, VerseEnd: 6}
	if !r.IsRange() {
		t.Error("1-6 should be a range")
	}
	r = Ref{Work: "Psalms", Chapter: 23, Verse: 1}
	if r.IsRange() {
		t.Error("single verse should not be a range")
	}
}
