package buffer

import (
	"fmt"

	"github.com/vellum-editor/vellum/internal/engine/cursor"
	"github.com/vellum-editor/vellum/internal/engine/rope"
)

// singleInvolved validates the pane set handed to a transform. Editing
// currently supports exactly one pane per buffer; the assertions keep
// that limitation loud instead of silently corrupting cursors once a
// second pane shows up.
func singleInvolved(panes []cursor.Pane, active cursor.PaneID) cursor.Pane {
	if len(panes) != 1 {
		panic(fmt.Sprintf("buffer transform wants exactly one involved pane, got %d", len(panes)))
	}
	p := panes[0]
	if p.ID != active {
		panic(fmt.Sprintf("active pane %d is not among the involved panes", active))
	}
	return p
}

// Insert inserts text at every cursor of the active pane. Cursors end
// up just after their inserted copy, and later cursors shift right to
// compensate for insertions made before them.
func (b TextBuffer) Insert(text string, panes []cursor.Pane, active cursor.PaneID) (TextBuffer, []cursor.Pane) {
	p := singleInvolved(panes, active)
	if text == "" {
		return b, panes
	}

	contents := b.Contents
	incr := len(text)
	sels := p.Selections()
	next := make([]cursor.Selection, 0, len(sels))
	mainStart := -1
	for i, s := range sels {
		at := s.Start + incr*i
		contents = contents.Insert(at, text)
		start := at + incr
		next = append(next, cursor.At(start))
		if s.Start == p.MainCursorStart {
			mainStart = start
		}
	}
	if mainStart < 0 {
		panic("main cursor missing from pane selections")
	}

	out := TextBuffer{File: b.File.markModified(), Contents: contents}
	col := graphemeCol(contents, mainStart)
	return out, []cursor.Pane{p.WithSelections(next, mainStart, col)}
}

// BackdeleteCursor deletes one grapheme cluster before every cursor of
// the active pane. Cursors at offset zero delete nothing. Deletions run
// from the last cursor backward so earlier offsets stay valid, and each
// surviving cursor shifts left by the bytes deleted at or before it.
// Cursors that collapse onto the same offset merge.
func (b TextBuffer) BackdeleteCursor(panes []cursor.Pane, active cursor.PaneID) (TextBuffer, []cursor.Pane) {
	p := singleInvolved(panes, active)

	contents := b.Contents
	sels := p.Selections()
	deleted := make([]int, len(sels))
	for i := len(sels) - 1; i >= 0; i-- {
		s := sels[i]
		if s.Start == 0 {
			continue
		}
		start := contents.PrevGraphemeBoundary(s.Start)
		contents = contents.Delete(start, s.Start)
		deleted[i] = s.Start - start
	}

	next := make([]cursor.Selection, 0, len(sels))
	mainStart := -1
	shift := 0
	for i, s := range sels {
		shift += deleted[i]
		start := s.Start - shift
		next = append(next, cursor.At(start))
		if s.Start == p.MainCursorStart {
			mainStart = start
		}
	}
	if mainStart < 0 {
		panic("main cursor missing from pane selections")
	}

	out := TextBuffer{File: b.File.markModified(), Contents: contents}
	col := graphemeCol(contents, mainStart)
	return out, []cursor.Pane{p.WithSelections(next, mainStart, col)}
}

// MoveHorizontal moves every cursor of the active pane by offset
// grapheme clusters, clamping at the buffer ends. The pane's column
// offset is adjusted by the same delta rather than recomputed, so a
// purely horizontal motion costs nothing even on pathological lines.
func (b TextBuffer) MoveHorizontal(offset int, panes []cursor.Pane, active cursor.PaneID) (TextBuffer, []cursor.Pane) {
	p := singleInvolved(panes, active)
	if offset == 0 {
		return b, panes
	}

	contents := b.Contents
	steps := offset
	if steps < 0 {
		steps = -steps
	}
	sels := p.Selections()
	next := make([]cursor.Selection, 0, len(sels))
	mainStart := -1
	for _, s := range sels {
		start := s.Start
		for j := 0; j < steps; j++ {
			if offset > 0 {
				start = contents.NextGraphemeBoundary(start)
			} else {
				start = contents.PrevGraphemeBoundary(start)
			}
		}
		next = append(next, cursor.At(start))
		if s.Start == p.MainCursorStart {
			mainStart = start
		}
	}
	if mainStart < 0 {
		panic("main cursor missing from pane selections")
	}

	col := p.GraphemeColOffset + offset
	if col < 0 {
		col = 0
	}
	return b, []cursor.Pane{p.WithSelections(next, mainStart, col)}
}

// MoveVertical moves every cursor of the active pane by offset lines,
// clamping at the first and last line. On the target line the cursor
// lands as close to the pane's remembered column as the line allows;
// the column itself is preserved, so hopping across a short line and
// back restores the original position.
func (b TextBuffer) MoveVertical(offset int, panes []cursor.Pane, active cursor.PaneID) (TextBuffer, []cursor.Pane) {
	p := singleInvolved(panes, active)
	if offset == 0 {
		return b, panes
	}

	contents := b.Contents
	numLines := contents.NumLines()
	sels := p.Selections()
	next := make([]cursor.Selection, 0, len(sels))
	mainStart := -1
	for _, s := range sels {
		target := contents.LineOfByte(s.Start) + offset
		if target < 0 {
			target = 0
		}
		if target > numLines {
			target = numLines
		}
		lineStart := contents.ByteOfLine(target)
		lineEnd := contents.ByteOfLine(target + 1)
		start := lineStart
		for j := 0; j < p.GraphemeColOffset; j++ {
			n := contents.NextGraphemeBoundary(start)
			if n >= lineEnd {
				break
			}
			start = n
		}
		next = append(next, cursor.At(start))
		if s.Start == p.MainCursorStart {
			mainStart = start
		}
	}
	if mainStart < 0 {
		panic("main cursor missing from pane selections")
	}

	return b, []cursor.Pane{p.WithSelections(next, mainStart, p.GraphemeColOffset)}
}

// GraphemeColOffset returns the grapheme column of the byte offset on
// its own line. Used when a cursor is placed directly, e.g. by a mouse
// click.
func (b TextBuffer) GraphemeColOffset(offset int) int {
	return graphemeCol(b.Contents, offset)
}

func graphemeCol(r rope.Rope, offset int) int {
	lineStart := r.ByteOfLine(r.LineOfByte(offset))
	return r.GraphemeCount(lineStart, offset)
}
