package cursor

import (
	"fmt"
	"sort"
)

// BufferID identifies a buffer in the shared buffer list.
type BufferID int

// PaneID identifies a pane in the shared pane list.
type PaneID int

// Pane is the cursor-set a user edits one buffer with. Selections are
// kept sorted ascending by Start and unique per Start: two cursors can
// never share a start offset, so inserting at an occupied key replaces
// the occupant.
//
// Pane is a value type. The selections slice is never shared with a
// mutable holder: all With* methods and accessors copy.
type Pane struct {
	selections []Selection

	// MainCursorStart is the Start key of the main cursor and must
	// always be present in the selection set.
	MainCursorStart int

	// GraphemeColOffset is the grapheme count from the start of the
	// main cursor's line to the main cursor. Vertical movement uses it
	// to restore the visual column on lines long enough to hold it.
	GraphemeColOffset int

	BufferID BufferID
	ID       PaneID

	// YOffset is the scroll position. The buffer engine carries it for
	// snapshot consistency but never interprets it.
	YOffset float32
}

// NewPane returns a pane with a single bare cursor at offset 0.
func NewPane(bufID BufferID, id PaneID) Pane {
	return Pane{
		selections: []Selection{At(0)},
		BufferID:   bufID,
		ID:         id,
	}
}

// Selections returns the selections in ascending Start order.
// The returned slice is a copy.
func (p Pane) Selections() []Selection {
	out := make([]Selection, len(p.selections))
	copy(out, p.selections)
	return out
}

// Count returns the number of cursors.
func (p Pane) Count() int { return len(p.selections) }

// Main returns the main cursor's selection.
// Panics when the pane invariant is broken.
func (p Pane) Main() Selection {
	for _, s := range p.selections {
		if s.Start == p.MainCursorStart {
			return s
		}
	}
	panic(fmt.Sprintf("pane %d: main cursor %d not in selection set", p.ID, p.MainCursorStart))
}

// WithSelections returns a pane holding the given selections, sorted
// and de-duplicated by Start (later entries win). mainStart must be a
// key of the resulting set.
func (p Pane) WithSelections(sels []Selection, mainStart, colOffset int) Pane {
	set := make([]Selection, 0, len(sels))
	for _, s := range sels {
		set = putSorted(set, s)
	}
	if !hasStart(set, mainStart) {
		panic(fmt.Sprintf("pane %d: main cursor %d not in selection set", p.ID, mainStart))
	}
	next := p
	next.selections = set
	next.MainCursorStart = mainStart
	next.GraphemeColOffset = colOffset
	return next
}

// WithMainCursor returns a pane whose main cursor has been re-seated
// at start: the old main entry is removed and a bare cursor inserted.
// Used for click-to-place.
func (p Pane) WithMainCursor(start, colOffset int) Pane {
	set := make([]Selection, 0, len(p.selections))
	for _, s := range p.selections {
		if s.Start == p.MainCursorStart {
			continue
		}
		set = putSorted(set, s)
	}
	set = putSorted(set, At(start))
	next := p
	next.selections = set
	next.MainCursorStart = start
	next.GraphemeColOffset = colOffset
	return next
}

// WithCursor returns a pane with an additional bare cursor at start.
// The main cursor is untouched; adding at an occupied key is a no-op
// overwrite.
func (p Pane) WithCursor(start int) Pane {
	set := make([]Selection, len(p.selections))
	copy(set, p.selections)
	next := p
	next.selections = putSorted(set, At(start))
	return next
}

// WithScroll returns a pane scrolled by dy, clamped to [0, end].
func (p Pane) WithScroll(dy, end float32) Pane {
	y := p.YOffset + dy
	if y < 0 {
		y = 0
	}
	if y > end {
		y = end
	}
	next := p
	next.selections = p.Selections()
	next.YOffset = y
	return next
}

// putSorted inserts s into an ascending-by-Start slice, replacing any
// existing selection with the same Start.
func putSorted(sels []Selection, s Selection) []Selection {
	i := sort.Search(len(sels), func(i int) bool {
		return sels[i].Start >= s.Start
	})
	if i < len(sels) && sels[i].Start == s.Start {
		sels[i] = s
		return sels
	}
	sels = append(sels, Selection{})
	copy(sels[i+1:], sels[i:])
	sels[i] = s
	return sels
}

func hasStart(sels []Selection, start int) bool {
	i := sort.Search(len(sels), func(i int) bool {
		return sels[i].Start >= start
	})
	return i < len(sels) && sels[i].Start == start
}
