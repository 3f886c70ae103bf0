// Package export writes a loaded corpus to a SQLite database. This is an
// outer surface for interoperability; the in-memory model never reads the
// database back, and loading always starts from the flat files.
package export

import (
	"database/sql"

	"github.com/seanmcnealy/lectern/core/corpus"
	lecterr "github.com/seanmcnealy/lectern/core/errors"
	"github.com/seanmcnealy/lectern/core/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	id TEXT PRIMARY KEY,
	books INTEGER,
	verses INTEGER
);
CREATE TABLE IF NOT EXISTS books (
	name TEXT,
	division TEXT,
	book_order INTEGER,
	source_hash TEXT
);
CREATE TABLE IF NOT EXISTS verses (
	book TEXT,
	chapter INTEGER,
	verse INTEGER,
	text TEXT
);
CREATE INDEX IF NOT EXISTS idx_verses_ref ON verses(book, chapter, verse);
`

// WriteFile creates (or overwrites the tables of) a database at path and
// writes the corpus into it under the given corpus id.
func WriteFile(path, id string, c *corpus.Corpus) error {
	db, err := sqlite.Open(path)
	if err != nil {
		return lecterr.NewIO("open", path, err)
	}
	defer db.Close()
	return Write(db, id, c)
}

// Write emits the corpus into an open database in one transaction, in
// canonical traversal order: works, then chapters, then verses as stored.
func Write(db *sql.DB, id string, c *corpus.Corpus) error {
	if _, err := db.Exec(schema); err != nil {
		return lecterr.Wrap(err, "create schema")
	}

	tx, err := db.Begin()
	if err != nil {
		return lecterr.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO meta (id, books, verses) VALUES (?, ?, ?)",
		id, len(c.Works), c.VerseCount(),
	); err != nil {
		return lecterr.Wrap(err, "insert meta")
	}

	insertBook, err := tx.Prepare(
		"INSERT INTO books (name, division, book_order, source_hash) VALUES (?, ?, ?, ?)")
	if err != nil {
		return lecterr.Wrap(err, "prepare books insert")
	}
	defer insertBook.Close()

	insertVerse, err := tx.Prepare(
		"INSERT INTO verses (book, chapter, verse, text) VALUES (?, ?, ?, ?)")
	if err != nil {
		return lecterr.Wrap(err, "prepare verses insert")
	}
	defer insertVerse.Close()

	for order, w := range c.Works {
		if _, err := insertBook.Exec(w.Name, string(w.Division), order+1, w.SourceHash); err != nil {
			return lecterr.Wrapf(err, "insert book %s", w.Name)
		}
		for i := range w.Chapters {
			ch := &w.Chapters[i]
			for _, v := range ch.Verses {
				if _, err := insertVerse.Exec(v.Work, v.Chapter, v.Number, v.Text); err != nil {
					return lecterr.Wrapf(err, "insert verse %s %d:%d", v.Work, v.Chapter, v.Number)
				}
			}
		}
	}

	return tx.Commit()
}
