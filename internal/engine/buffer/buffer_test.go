package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vellum-editor/vellum/internal/engine/cursor"
)

func TestBlank(t *testing.T) {
	b := Blank()
	if b.Len() != 0 {
		t.Fatalf("blank buffer has %d bytes", b.Len())
	}
	if b.NumLines() != 1 {
		t.Fatalf("blank buffer has %d lines, want 1", b.NumLines())
	}
	if b.File != nil {
		t.Fatal("blank buffer has file metadata")
	}
	if b.IsModified() {
		t.Fatal("empty scratch buffer reported modified")
	}
	if b.Path() != "" {
		t.Fatalf("blank buffer path = %q", b.Path())
	}
}

func TestScratchModifiedOnceNonEmpty(t *testing.T) {
	b := FromString("hi")
	if !b.IsModified() {
		t.Fatal("non-empty scratch buffer not reported modified")
	}
}

func TestOpenAndWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	const text = "héllo wörld\nsecond line\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := b.Contents.String(); got != text {
		t.Fatalf("opened contents = %q, want %q", got, text)
	}
	if b.IsModified() {
		t.Fatal("freshly opened buffer reported modified")
	}
	if b.Path() != path {
		t.Fatalf("path = %q, want %q", b.Path(), path)
	}

	out := filepath.Join(dir, "copy.txt")
	saved, err := b.Write(out)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if saved.IsModified() {
		t.Fatal("saved buffer reported modified")
	}
	if saved.Path() != out {
		t.Fatalf("saved path = %q, want %q", saved.Path(), out)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Fatalf("written file = %q, want %q", data, text)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Open of missing file succeeded")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want ErrNotExist", err)
	}
}

func TestOpenRespectsSizeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := OpenWithLimit(path, 10)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("error = %v, want ErrFileTooLarge", err)
	}
	if _, err := OpenWithLimit(path, 11); err != nil {
		t.Fatalf("open under the limit: %v", err)
	}
}

func TestEditMarksFileModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("ab"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	panes := []cursor.Pane{cursor.NewPane(0, 1)}
	edited, _ := b.Insert("x", panes, 1)
	if !edited.IsModified() {
		t.Fatal("edited buffer not reported modified")
	}
	if b.IsModified() {
		t.Fatal("edit mutated the original buffer's metadata")
	}
	if b.Contents.String() != "ab" {
		t.Fatalf("edit mutated original contents: %q", b.Contents.String())
	}
}

func TestNowrapLines(t *testing.T) {
	b := FromString("ab\ncd\nef")
	it, start := b.NowrapLines(1, 3)
	if start != 3 {
		t.Fatalf("start offset = %d, want 3", start)
	}
	var got string
	for it.Next() {
		got += it.Grapheme()
	}
	if got != "cd\nef" {
		t.Fatalf("range text = %q, want %q", got, "cd\nef")
	}

	// Viewport past the end of the buffer yields nothing.
	it, start = b.NowrapLines(7, 12)
	if start != b.Len() {
		t.Fatalf("past-end start = %d, want %d", start, b.Len())
	}
	if it.Next() {
		t.Fatal("past-end iterator yielded a cluster")
	}
}

func TestLinesIterator(t *testing.T) {
	b := FromString("one\ntwo\n")
	var lines []string
	for it := b.Lines(); it.Next(); {
		lines = append(lines, it.Text())
	}
	want := []string{"one", "two", ""}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
