package rope

import "github.com/rivo/uniseg"

// Grapheme queries are answered with rivo/uniseg. Cluster boundaries
// never cross a newline, so the start of a line is always a safe
// restart point for segmentation; queries therefore work on at most
// one line of text at a time.

// IsGraphemeBoundary reports whether the byte offset falls on a
// grapheme-cluster boundary. Offsets at or beyond the rope ends count
// as boundaries.
func (r Rope) IsGraphemeBoundary(offset int) bool {
	if offset <= 0 || offset >= r.Len() {
		return true
	}
	if b, ok := r.ByteAt(offset); ok && !utf8Start(b) {
		return false
	}

	line := r.LineOfByte(offset)
	start := r.ByteOfLine(line)
	if start == offset {
		return true
	}
	// Walk the full line: trailing context (ZWJ sequences, regional
	// indicator pairing) can extend a cluster past the offset.
	s := r.Slice(start, r.ByteOfLine(line+1))
	pos := start
	state := -1
	for s != "" {
		cluster, rest, _, st := uniseg.FirstGraphemeClusterInString(s, state)
		pos += len(cluster)
		if pos == offset {
			return true
		}
		if pos > offset {
			return false
		}
		s, state = rest, st
	}
	return false
}

// PrevGraphemeBoundary returns the greatest grapheme boundary strictly
// before offset, or 0 when there is none.
func (r Rope) PrevGraphemeBoundary(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > r.Len() {
		offset = r.Len()
	}
	line := r.LineOfByte(offset - 1)
	start := r.ByteOfLine(line)
	s := r.Slice(start, r.ByteOfLine(line+1))
	prev := start
	pos := start
	state := -1
	for s != "" {
		cluster, rest, _, st := uniseg.FirstGraphemeClusterInString(s, state)
		if pos+len(cluster) >= offset {
			break
		}
		pos += len(cluster)
		prev = pos
		s, state = rest, st
	}
	return prev
}

// NextGraphemeBoundary returns the least grapheme boundary strictly
// after offset, or Len() when there is none.
func (r Rope) NextGraphemeBoundary(offset int) int {
	if offset >= r.Len() {
		return r.Len()
	}
	if offset < 0 {
		offset = 0
	}
	line := r.LineOfByte(offset)
	start := r.ByteOfLine(line)
	lineEnd := r.ByteOfLine(line + 1)
	s := r.Slice(start, lineEnd)
	pos := start
	state := -1
	for s != "" {
		cluster, rest, _, st := uniseg.FirstGraphemeClusterInString(s, state)
		pos += len(cluster)
		if pos > offset {
			return pos
		}
		s, state = rest, st
	}
	return lineEnd
}

// GraphemeIterator walks the grapheme clusters of a byte range.
// It loads at most one line of text at a time, so iterating a viewport
// over a gigabyte file stays cheap.
type GraphemeIterator struct {
	rope    Rope
	pos     int
	end     int
	seg     string
	state   int
	cluster string
	start   int
}

// Graphemes returns an iterator over the clusters in [start, end).
// Both bounds should be grapheme-boundary-aligned.
func (r Rope) Graphemes(start, end int) *GraphemeIterator {
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	return &GraphemeIterator{rope: r, pos: start, end: end, state: -1}
}

// Next advances to the next cluster, reporting false at the end.
func (it *GraphemeIterator) Next() bool {
	if it.pos >= it.end {
		return false
	}
	if it.seg == "" {
		line := it.rope.LineOfByte(it.pos)
		segEnd := it.rope.ByteOfLine(line + 1)
		if segEnd > it.end {
			segEnd = it.end
		}
		it.seg = it.rope.Slice(it.pos, segEnd)
		it.state = -1
		if it.seg == "" {
			return false
		}
	}
	cluster, rest, _, st := uniseg.FirstGraphemeClusterInString(it.seg, it.state)
	if cluster == "" {
		return false
	}
	it.cluster = cluster
	it.start = it.pos
	it.pos += len(cluster)
	it.seg, it.state = rest, st
	return true
}

// Grapheme returns the current cluster.
func (it *GraphemeIterator) Grapheme() string { return it.cluster }

// Offset returns the absolute byte offset of the current cluster.
func (it *GraphemeIterator) Offset() int { return it.start }

// GraphemeCount returns the number of clusters in [start, end).
func (r Rope) GraphemeCount(start, end int) int {
	it := r.Graphemes(start, end)
	n := 0
	for it.Next() {
		n++
	}
	return n
}
