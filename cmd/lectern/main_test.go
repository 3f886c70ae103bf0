package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	lecterr "github.com/seanmcnealy/lectern/core/errors"
	"github.com/seanmcnealy/lectern/core/sqlite"
)

// setupDivisions points the global CLI config at a small fixture corpus.
func setupDivisions(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	oldDir := filepath.Join(root, "old")
	newDir := filepath.Join(root, "new")
	for _, d := range []string{oldDir, newDir} {
		if err := os.Mkdir(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(oldDir, "Genesis.txt"),
		[]byte("1:1 In the beginning God created the heaven and the earth.\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(newDir, "John.txt"),
		[]byte("3:16 For God so loved the world\n"), 0644); err != nil {
		t.Fatal(err)
	}
	CLI.Old = oldDir
	CLI.New = newDir
}

func TestLoadCorpus(t *testing.T) {
	setupDivisions(t)

	c, err := loadCorpus()
	if err != nil {
		t.Fatalf("loadCorpus failed: %v", err)
	}
	if len(c.Works) != 2 {
		t.Errorf("loaded %d works, want 2", len(c.Works))
	}
	if c.Works[0].Name != "Genesis" {
		t.Errorf("first work = %s, want Genesis", c.Works[0].Name)
	}
}

func TestLoadCorpusMissingDivision(t *testing.T) {
	setupDivisions(t)
	CLI.New = filepath.Join(CLI.New, "missing")

	_, err := loadCorpus()
	if err == nil {
		t.Fatal("loadCorpus should fail for a missing division directory")
	}
	var ioErr *lecterr.IOError
	if !lecterr.As(err, &ioErr) {
		t.Errorf("error is %T, want *errors.IOError", err)
	}
}

func TestShowRequiresChapter(t *testing.T) {
	setupDivisions(t)

	cmd := &ShowCmd{Ref: []string{"Genesis"}}
	err := cmd.Run()
	if err == nil {
		t.Fatal("show with a work-only reference should fail")
	}
	var parseErr *lecterr.ParseError
	if !lecterr.As(err, &parseErr) {
		t.Errorf("error is %T, want *errors.ParseError", err)
	}
}

func TestShowUnknownVerse(t *testing.T) {
	setupDivisions(t)

	cmd := &ShowCmd{Ref: []string{"Genesis", "1:99"}}
	err := cmd.Run()
	if err == nil {
		t.Fatal("show of a missing verse should fail")
	}
	if !lecterr.Is(err, lecterr.ErrNotFound) {
		t.Errorf("error should unwrap to ErrNotFound, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	cmd := &VersionCmd{}
	runErr := cmd.Run()
	w.Close()
	os.Stdout = stdout

	if runErr != nil {
		t.Fatalf("version failed: %v", runErr)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "lectern "+version) {
		t.Errorf("version output missing version line: %q", out)
	}
	info := sqlite.GetInfo()
	if !strings.Contains(string(out), info.Package) {
		t.Errorf("version output missing sqlite driver info: %q", out)
	}
}
