package tui

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/vellum-editor/vellum/internal/engine/buffer"
	"github.com/vellum-editor/vellum/internal/engine/cursor"
)

// draw renders the pane's viewport and status line from the current
// snapshots. It reads only through Views and never blocks the writer.
func (u *UI) draw() {
	p, ok := u.currentPane()
	if !ok {
		return
	}
	buf := u.buffers.Get(int(p.BufferID))

	u.screen.Clear()
	w, h := u.screen.Size()
	textH := h - 1
	if textH < 1 {
		textH = h
	}

	sels := p.Selections()
	cursorAt := make(map[int]bool, len(sels))
	for _, s := range sels {
		cursorAt[s.Start] = true
	}
	cursorStyle := tcell.StyleDefault.Reverse(true)

	top := int(p.YOffset)
	it, _ := buf.NowrapLines(top, top+textH)
	x, y := 0, 0
	mainX, mainY := -1, -1
	for it.Next() {
		g := it.Grapheme()
		start := it.Offset()
		if start == p.MainCursorStart {
			mainX, mainY = x, y
		}
		st := tcell.StyleDefault
		if cursorAt[start] && u.blinkOn {
			st = cursorStyle
		}
		switch g {
		case "\n":
			if st != tcell.StyleDefault && x < w {
				u.screen.SetContent(x, y, ' ', nil, st)
			}
			x = 0
			y++
		case "\t":
			stop := (x/u.cfg.TabWidth + 1) * u.cfg.TabWidth
			for x < stop && x < w {
				u.screen.SetContent(x, y, ' ', nil, st)
				st = tcell.StyleDefault
				x++
			}
		default:
			r := []rune(g)
			if x < w {
				u.screen.SetContent(x, y, r[0], r[1:], st)
			}
			x += uniseg.StringWidth(g)
		}
		if y >= textH {
			break
		}
	}
	// A cursor may sit past the last cluster of the viewport.
	if y < textH && cursorAt[buf.Len()] {
		if u.blinkOn && x < w {
			u.screen.SetContent(x, y, ' ', nil, cursorStyle)
		}
		if p.MainCursorStart == buf.Len() {
			mainX, mainY = x, y
		}
	}
	if mainX >= 0 {
		u.screen.ShowCursor(mainX, mainY)
	} else {
		u.screen.HideCursor()
	}

	if h > 1 {
		u.drawStatus(p, buf, w, h-1)
	}
	u.screen.Show()
}

func (u *UI) drawStatus(p cursor.Pane, buf buffer.TextBuffer, w, row int) {
	name := buf.Path()
	if name == "" {
		name = "[scratch]"
	} else {
		name = filepath.Base(name)
	}
	mod := ""
	if buf.IsModified() {
		mod = " *"
	}
	line := buf.Contents.LineOfByte(p.MainCursorStart) + 1
	col := buf.GraphemeColOffset(p.MainCursorStart) + 1
	status := fmt.Sprintf(" %s%s  %d:%d", name, mod, line, col)
	if n := p.Count(); n > 1 {
		status += fmt.Sprintf("  %d cursors", n)
	}

	st := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		u.screen.SetContent(x, row, r, nil, st)
		x++
	}
	for ; x < w; x++ {
		u.screen.SetContent(x, row, ' ', nil, st)
	}
}

// offsetAt maps a screen cell to a byte offset, honoring tab stops and
// wide clusters. Clicks past the end of a line land on its newline;
// clicks below the text land at the end of the buffer.
func (u *UI) offsetAt(x, y int) (int, bool) {
	p, ok := u.currentPane()
	if !ok {
		return 0, false
	}
	buf := u.buffers.Get(int(p.BufferID))
	line := int(p.YOffset) + y
	if line >= buf.NumLines() {
		return buf.Len(), true
	}
	it, start := buf.NowrapLines(line, line+1)
	col := 0
	off := start
	for it.Next() {
		g := it.Grapheme()
		if g == "\n" {
			return it.Offset(), true
		}
		var adv int
		if g == "\t" {
			adv = (col/u.cfg.TabWidth+1)*u.cfg.TabWidth - col
		} else {
			adv = uniseg.StringWidth(g)
		}
		if col+adv > x {
			return it.Offset(), true
		}
		col += adv
		off = it.Offset() + len(g)
	}
	return off, true
}
