package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/vellum-editor/vellum/internal/engine/rope"
)

// MaxFileSize is the largest file Open will load.
const MaxFileSize = 3 << 30 // 3 GiB

// ErrFileTooLarge is returned by Open for files at or above MaxFileSize.
var ErrFileTooLarge = errors.New("file too large")

// FileInfo records where a buffer came from on disk. Treat values as
// immutable; transforms that change state allocate a fresh copy.
type FileInfo struct {
	Filename   string
	IsModified bool
	// FileTime is when the buffer and the on-disk file last matched.
	FileTime time.Time
}

// TextBuffer is an immutable snapshot of a document. The zero value is
// an empty scratch buffer.
type TextBuffer struct {
	// File is nil for scratch buffers that have never touched disk.
	File     *FileInfo
	Contents rope.Rope
}

// Blank returns an empty buffer with no backing file.
func Blank() TextBuffer {
	return TextBuffer{Contents: rope.New()}
}

// FromString returns an unsaved buffer holding text.
func FromString(text string) TextBuffer {
	return TextBuffer{Contents: rope.FromString(text)}
}

// Open loads the file at path. Files of MaxFileSize bytes or more are
// refused with ErrFileTooLarge before any of their contents is read.
func Open(path string) (TextBuffer, error) {
	return OpenWithLimit(path, MaxFileSize)
}

// OpenWithLimit is Open with an explicit size ceiling.
func OpenWithLimit(path string, limit int64) (TextBuffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return TextBuffer{}, fmt.Errorf("open %s: %w", path, err)
	}
	if info.Size() >= limit {
		return TextBuffer{}, fmt.Errorf("open %s (%d bytes): %w", path, info.Size(), ErrFileTooLarge)
	}
	f, err := os.Open(path)
	if err != nil {
		return TextBuffer{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	contents, err := rope.FromReader(f)
	if err != nil {
		return TextBuffer{}, fmt.Errorf("read %s: %w", path, err)
	}
	return TextBuffer{
		File:     &FileInfo{Filename: path, FileTime: time.Now()},
		Contents: contents,
	}, nil
}

// Write saves the buffer to path and returns the saved buffer, whose
// file metadata is clean. The receiver is unchanged.
func (b TextBuffer) Write(path string) (TextBuffer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return TextBuffer{}, fmt.Errorf("write %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if _, err := b.Contents.WriteTo(w); err != nil {
		f.Close()
		return TextBuffer{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return TextBuffer{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return TextBuffer{}, fmt.Errorf("write %s: %w", path, err)
	}
	return TextBuffer{
		File:     &FileInfo{Filename: path, FileTime: time.Now()},
		Contents: b.Contents,
	}, nil
}

// Path returns the backing filename, or "" for scratch buffers.
func (b TextBuffer) Path() string {
	if b.File == nil {
		return ""
	}
	return b.File.Filename
}

// IsModified reports whether the buffer has unsaved edits. Scratch
// buffers count as modified once they hold any text.
func (b TextBuffer) IsModified() bool {
	if b.File == nil {
		return !b.Contents.IsEmpty()
	}
	return b.File.IsModified
}

// markModified returns file metadata for an edited version of the
// buffer. nil stays nil.
func (fi *FileInfo) markModified() *FileInfo {
	if fi == nil {
		return nil
	}
	c := *fi
	c.IsModified = true
	return &c
}
