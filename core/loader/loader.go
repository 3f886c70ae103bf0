// Package loader reads two directory trees of flat verse files and builds
// the in-memory corpus. One file per work, one record per line in the shape
// "<chapter>:<verse> <text>". Loading is strictly best-effort below file
// granularity: bad lines are logged and dropped, never fatal.
package loader

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/seanmcnealy/lectern/core/corpus"
	lecterr "github.com/seanmcnealy/lectern/core/errors"
	"github.com/seanmcnealy/lectern/internal/logging"
)

// metadataArtifact is a filesystem bookkeeping file skipped by exact name
// during enumeration.
const metadataArtifact = ".DS_Store"

// xzSuffix marks a work file stored xz-compressed.
const xzSuffix = ".xz"

// maxLineBytes caps a single verse line. Psalm 119 in any translation is
// nowhere near this.
const maxLineBytes = 1 << 20

// Load reads both division directories and returns the assembled corpus
// with works in canonical order. A directory that cannot be enumerated or
// a file that cannot be opened aborts the whole load with an IOError;
// everything smaller is a diagnostic.
func Load(oldPath, newPath string) (*corpus.Corpus, error) {
	c := &corpus.Corpus{}
	if err := loadDivision(c, oldPath, corpus.DivisionOld); err != nil {
		return nil, err
	}
	if err := loadDivision(c, newPath, corpus.DivisionNew); err != nil {
		return nil, err
	}
	corpus.SortCanonical(c.Works)
	return c, nil
}

// loadDivision enumerates one directory non-recursively and parses every
// regular file into a work. Enumeration order is whatever the filesystem
// yields; the caller sorts canonically after both divisions are in.
func loadDivision(c *corpus.Corpus, dir string, div corpus.Division) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return lecterr.NewIO("enumerate", dir, err)
	}
	for _, entry := range entries {
		if entry.Name() == metadataArtifact {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		w, err := parseWorkFile(filepath.Join(dir, entry.Name()), div)
		if err != nil {
			return err
		}
		c.Works = append(c.Works, w)
	}
	return nil
}

// workName derives the work's name from a file name by stripping the
// extension. Compressed files shed the xz suffix first, so
// "Genesis.txt.xz" and "Genesis.txt" name the same work.
func workName(fileName string) string {
	name := strings.TrimSuffix(fileName, xzSuffix)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// parseWorkFile reads one work file into a Work. The source hash covers the
// raw on-disk bytes, before any decompression.
func parseWorkFile(path string, div corpus.Division) (*corpus.Work, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Error("cannot open work file", "path", path, "error", err)
		return nil, lecterr.NewIO("open", path, err)
	}

	sum := blake3.Sum256(data)

	if strings.HasSuffix(path, xzSuffix) {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			logging.Error("cannot decompress work file", "path", path, "error", err)
			return nil, lecterr.NewIO("decompress", path, err)
		}
		if data, err = io.ReadAll(r); err != nil {
			logging.Error("cannot decompress work file", "path", path, "error", err)
			return nil, lecterr.NewIO("decompress", path, err)
		}
	}

	w := &corpus.Work{
		Name:       workName(filepath.Base(path)),
		Division:   div,
		SourceHash: hex.EncodeToString(sum[:]),
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parseLine(w, scanner.Text(), path, lineNo)
	}
	if err := scanner.Err(); err != nil {
		// Scan failures on in-memory data mean an oversized line; the
		// rest of the file is unreachable, which matches the read-error
		// tolerance contract: report and keep what we have.
		logging.Error("cannot read line", "path", path, "line", lineNo+1, "error", err)
	}

	return w, nil
}

// parseLine decodes one "<chapter>:<verse> <text>" record and appends the
// verse, growing the chapter array with empty gap chapters as needed.
// Lines that do not match the shape are warned about and contribute
// nothing. Locator components that fail to parse as non-negative integers
// coerce to 0 without a diagnostic of their own.
func parseLine(w *corpus.Work, line, path string, lineNo int) {
	locator, text, ok := strings.Cut(line, " ")
	if !ok {
		logging.Warn("malformed verse line", "path", path, "line", lineNo, "content", line)
		return
	}
	chapterStr, verseStr, ok := strings.Cut(locator, ":")
	if !ok {
		logging.Warn("malformed verse line", "path", path, "line", lineNo, "content", line)
		return
	}

	chapterNum := parseNumber(chapterStr)
	verseNum := parseNumber(verseStr)

	if chapterNum == 0 {
		// Chapter 0 has no slot in the dense chapter array. The verse is
		// dropped rather than attributed to chapter 1.
		logging.Warn("verse locator has no chapter", "path", path, "line", lineNo, "locator", locator)
		return
	}

	for len(w.Chapters) < chapterNum {
		w.Chapters = append(w.Chapters, corpus.Chapter{Number: len(w.Chapters) + 1})
	}

	ch := &w.Chapters[chapterNum-1]
	ch.Verses = append(ch.Verses, corpus.Verse{
		Work:    w.Name,
		Chapter: chapterNum,
		Number:  verseNum,
		Text:    text,
	})
}

// parseNumber parses a non-negative integer, coercing anything else to 0.
func parseNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
