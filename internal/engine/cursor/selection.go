package cursor

import "fmt"

// Selection is a cursor plus a signed extent.
//
//	"|abc\djk"  Start: 0, Offset: 3
//	"|\abcdjk"  Start: 0, Offset: 0
//	"ab\cdj|k"  Start: 5, Offset: -3
//
// (| marks the cursor, \ the far end of the selection.)
//
// Start is the cursor's byte offset: 0 means before the first byte.
// Offset is the signed distance to the selection's other end, so
// Start+Offset is the far end and a zero Offset is a bare cursor.
// Both ends always sit on grapheme boundaries within the buffer.
type Selection struct {
	Start  int
	Offset int64
}

// At returns an empty selection (bare cursor) at the given offset.
func At(start int) Selection {
	return Selection{Start: start}
}

// End returns the far end of the selection.
func (s Selection) End() int {
	return s.Start + int(s.Offset)
}

// IsEmpty reports whether the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Offset == 0
}

// Reverse swaps the cursor to the other end of the selection.
func (s Selection) Reverse() Selection {
	return Selection{Start: s.End(), Offset: -s.Offset}
}

// Min returns the lower bound of the selected range.
func (s Selection) Min() int {
	if s.Offset < 0 {
		return s.End()
	}
	return s.Start
}

// Max returns the upper bound of the selected range.
func (s Selection) Max() int {
	if s.Offset > 0 {
		return s.End()
	}
	return s.Start
}

func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Start)
	}
	return fmt.Sprintf("Selection(%d%+d)", s.Start, s.Offset)
}
