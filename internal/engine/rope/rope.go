package rope

import "strings"

// Rope is an immutable text container. The zero value is an empty rope.
// Operations return new Rope values sharing structure with the
// original, which makes snapshots cheap and concurrent reads safe.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{root: newLeaf(nil)}
}

// FromString builds a rope over s.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return fromChunks(splitIntoChunks(s))
}

func fromChunks(chunks []chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}
	var leaves []*node
	for i := 0; i < len(chunks); i += maxChunksPerLeaf {
		end := i + maxChunksPerLeaf
		if end > len(chunks) {
			end = len(chunks)
		}
		leafChunks := make([]chunk, end-i)
		copy(leafChunks, chunks[i:end])
		leaves = append(leaves, newLeaf(leafChunks))
	}
	return Rope{root: fromChildren(leaves)}
}

// Len returns the total byte length.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.sum.bytes
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool { return r.Len() == 0 }

// NumLines returns the number of line-separator-delimited segments
// (newline count + 1; an empty rope has one line).
func (r Rope) NumLines() int {
	if r.root == nil {
		return 1
	}
	return r.root.sum.newlines + 1
}

// String materializes the full text. Use sparingly on large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.Len())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in [start, end), clamped to the rope bounds.
func (r Rope) Slice(start, end int) string {
	if r.root == nil {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// ByteAt returns the byte at offset, or 0 and false when out of range.
func (r Rope) ByteAt(offset int) (byte, bool) {
	if r.root == nil || offset < 0 || offset >= r.Len() {
		return 0, false
	}
	return r.root.byteAt(offset), true
}

// Insert returns a rope with text inserted at the byte offset. Offsets
// past the end append.
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}
	if offset <= 0 {
		return FromString(text).Concat(r)
	}
	if offset >= r.Len() {
		return r.Concat(FromString(text))
	}
	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete returns a rope with the byte range [start, end) removed.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil || start >= end || start >= r.Len() {
		return r
	}
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start == 0 && end == r.Len() {
		return New()
	}
	if start == 0 {
		_, right := r.Split(end)
		return right
	}
	if end == r.Len() {
		left, _ := r.Split(start)
		return left
	}
	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Split divides the rope at offset: [0, offset) and [offset, len).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat joins two ropes.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}
	return Rope{root: concatNodes(r.root, other.root)}
}

// ByteOfLine returns the byte offset of the start of the 0-indexed
// line. Lines past the last return Len().
func (r Rope) ByteOfLine(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line > r.root.sum.newlines {
		return r.Len()
	}
	return r.root.byteAfterNewline(line)
}

// LineOfByte returns the 0-indexed line containing the byte offset.
// Offsets at or past the end report the last line.
func (r Rope) LineOfByte(offset int) int {
	if r.root == nil || offset <= 0 {
		return 0
	}
	return r.root.newlinesBefore(offset)
}

// Equals reports content equality.
func (r Rope) Equals(other Rope) bool {
	if r.Len() != other.Len() {
		return false
	}
	return r.String() == other.String()
}
