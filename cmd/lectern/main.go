// Command lectern is the flat-file scripture reader. It loads two
// directories of verse files into memory at startup and serves every
// subcommand from that one in-memory corpus.
package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/seanmcnealy/lectern/core/corpus"
	lecterr "github.com/seanmcnealy/lectern/core/errors"
	"github.com/seanmcnealy/lectern/core/loader"
	"github.com/seanmcnealy/lectern/core/ref"
	"github.com/seanmcnealy/lectern/core/sqlite"
	"github.com/seanmcnealy/lectern/internal/export"
	"github.com/seanmcnealy/lectern/internal/logging"
	"github.com/seanmcnealy/lectern/internal/tui"
)

const version = "0.1.0"

// CLI defines the command-line interface for lectern.
var CLI struct {
	// Global flags
	Old       string `help:"Old division directory" default:"old_testament" type:"path"`
	New       string `help:"New division directory" default:"new_testament" type:"path"`
	LogLevel  string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log format" enum:"text,json" default:"text"`

	Books   BooksCmd   `cmd:"" help:"List works in canonical order with chapter counts"`
	Show    ShowCmd    `cmd:"" help:"Print a chapter or verse by reference"`
	Search  SearchCmd  `cmd:"" help:"Search every verse for a substring"`
	Export  ExportCmd  `cmd:"" help:"Write the corpus to a SQLite database"`
	Tui     TuiCmd     `cmd:"" help:"Open the interactive reader"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// loadCorpus builds the corpus from the configured division directories.
// Loading is the only expensive step; every command performs it once and
// queries the result.
func loadCorpus() (*corpus.Corpus, error) {
	c, err := loader.Load(CLI.Old, CLI.New)
	if err != nil {
		return nil, err
	}
	logging.Debug("corpus loaded", "works", len(c.Works), "verses", c.VerseCount())
	for i, w := range c.Works {
		logging.Debug("work order", "position", i+1, "name", w.Name)
	}
	return c, nil
}

// BooksCmd lists works in canonical order.
type BooksCmd struct{}

func (c *BooksCmd) Run() error {
	corp, err := loadCorpus()
	if err != nil {
		return err
	}
	for i, w := range corp.Works {
		fmt.Printf("%2d. %s (%d chapters)\n", i+1, w.Name, w.ChapterCount())
	}
	return nil
}

// ShowCmd prints a chapter or single verse.
type ShowCmd struct {
	Ref []string `arg:"" help:"Reference, e.g. 'Genesis 1' or 'John 3:16'"`
}

func (c *ShowCmd) Run() error {
	r, err := ref.Parse(strings.Join(c.Ref, " "))
	if err != nil {
		return err
	}
	if r.Chapter == 0 {
		return lecterr.NewParse("reference", r.Work, "a chapter is required, e.g. 'Genesis 1'")
	}

	corp, err := loadCorpus()
	if err != nil {
		return err
	}

	if r.Verse > 0 && !r.IsRange() {
		v := corp.GetVerse(r.Work, r.Chapter, r.Verse)
		if v == nil {
			return lecterr.NewNotFound("verse", r.String())
		}
		fmt.Printf("%d %s\n", v.Number, v.Text)
		return nil
	}

	ch := corp.GetChapter(r.Work, r.Chapter)
	if ch == nil {
		return lecterr.NewNotFound("chapter", r.String())
	}
	for _, v := range ch.Verses {
		if r.IsRange() && (v.Number < r.Verse || v.Number > r.VerseEnd) {
			continue
		}
		fmt.Printf("%d %s\n", v.Number, v.Text)
	}
	return nil
}

// SearchCmd runs a case-insensitive substring search over every verse.
type SearchCmd struct {
	Query []string `arg:"" help:"Text to search for"`
}

func (c *SearchCmd) Run() error {
	corp, err := loadCorpus()
	if err != nil {
		return err
	}
	results := corp.Search(strings.Join(c.Query, " "))
	for _, v := range results {
		fmt.Printf("%s %d:%d %s\n", v.Work, v.Chapter, v.Number, v.Text)
	}
	fmt.Printf("Found %d results\n", len(results))
	return nil
}

// ExportCmd writes the corpus to a SQLite database.
type ExportCmd struct {
	Out string `arg:"" help:"Output database path" type:"path"`
	ID  string `help:"Corpus identifier stored in the meta table" default:"lectern"`
}

func (c *ExportCmd) Run() error {
	corp, err := loadCorpus()
	if err != nil {
		return err
	}
	if err := export.WriteFile(c.Out, c.ID, corp); err != nil {
		return err
	}
	fmt.Printf("Exported %d works, %d verses to %s\n", len(corp.Works), corp.VerseCount(), c.Out)
	return nil
}

// TuiCmd opens the interactive reader.
type TuiCmd struct{}

func (c *TuiCmd) Run() error {
	corp, err := loadCorpus()
	if err != nil {
		return err
	}
	return tui.Run(corp)
}

// VersionCmd prints version and build information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Printf("lectern %s\n", version)
	fmt.Printf("sqlite: %s driver (%s)\n", info.DriverType, info.Package)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lectern"),
		kong.Description("Flat-file scripture corpus reader"),
		kong.UsageOnError(),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
