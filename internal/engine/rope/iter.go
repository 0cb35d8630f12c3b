package rope

import "io"

// LineIterator walks the lines of a rope lazily. Each line's text is
// materialized only when visited, so iterating the viewport of a huge
// file never touches the rest of the document.
type LineIterator struct {
	rope    Rope
	line    int
	text    string
	start   int
	end     int
	started bool
}

// Lines returns an iterator over every line (newline excluded).
func (r Rope) Lines() *LineIterator {
	return &LineIterator{rope: r}
}

// LinesFrom returns an iterator starting at the 0-indexed line.
func (r Rope) LinesFrom(line int) *LineIterator {
	if line < 0 {
		line = 0
	}
	return &LineIterator{rope: r, line: line}
}

// Next advances to the next line, reporting false past the last one.
func (it *LineIterator) Next() bool {
	if it.started {
		it.line++
	}
	it.started = true
	if it.line >= it.rope.NumLines() {
		return false
	}
	it.start = it.rope.ByteOfLine(it.line)
	next := it.rope.ByteOfLine(it.line + 1)
	it.end = next
	if next > it.start {
		if b, ok := it.rope.ByteAt(next - 1); ok && b == '\n' {
			it.end = next - 1
		}
	}
	it.text = it.rope.Slice(it.start, it.end)
	return true
}

// Text returns the current line without its newline.
func (it *LineIterator) Text() string { return it.text }

// Line returns the current 0-indexed line number.
func (it *LineIterator) Line() int { return it.line }

// StartOffset returns the byte offset of the line start.
func (it *LineIterator) StartOffset() int { return it.start }

// WriteTo streams the rope's text to w without materializing the whole
// document. Implements io.WriterTo.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	if r.root == nil {
		return 0, nil
	}
	return r.root.writeTo(w)
}

func (n *node) writeTo(w io.Writer) (int64, error) {
	var total int64
	if n.leaf() {
		for _, c := range n.chunks {
			m, err := io.WriteString(w, c.data)
			total += int64(m)
			if err != nil {
				return total, err
			}
		}
		return total, nil
	}
	for _, child := range n.children {
		m, err := child.writeTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
