package buffer

import "github.com/vellum-editor/vellum/internal/engine/rope"

// Len returns the buffer size in bytes.
func (b TextBuffer) Len() int { return b.Contents.Len() }

// NumLines returns the number of lines. An empty buffer has one line.
func (b TextBuffer) NumLines() int { return b.Contents.NumLines() }

// Lines iterates the buffer's lines from the top.
func (b TextBuffer) Lines() *rope.LineIterator { return b.Contents.Lines() }

// NowrapLines returns a grapheme iterator over the half-open line range
// [startLine, endLine), plus the byte offset the iterator begins at.
// The iterator yields newlines like any other cluster; callers render
// without wrapping and break lines where they see '\n'. Lines past the
// end of the buffer simply yield nothing, so a viewport may overshoot.
func (b TextBuffer) NowrapLines(startLine, endLine int) (*rope.GraphemeIterator, int) {
	start := b.Contents.ByteOfLine(startLine)
	end := b.Contents.ByteOfLine(endLine)
	return b.Contents.Graphemes(start, end), start
}
