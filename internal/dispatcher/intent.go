package dispatcher

import "github.com/vellum-editor/vellum/internal/engine/cursor"

// Kind identifies an editing intent.
type Kind int

const (
	// KindInsert inserts Text at every cursor of the pane.
	KindInsert Kind = iota
	// KindBackdelete deletes one grapheme before every cursor.
	KindBackdelete
	// KindMoveHorizontal moves every cursor Offset graphemes.
	KindMoveHorizontal
	// KindMoveVertical moves every cursor Offset lines.
	KindMoveVertical
	// KindSetMainCursor re-seats the main cursor at byte offset Start.
	KindSetMainCursor
	// KindAddCursor adds a cursor at byte offset Start.
	KindAddCursor
	// KindScrollLines scrolls the pane viewport by Offset lines.
	KindScrollLines
	// KindSave writes the pane's buffer back to its file.
	KindSave
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindBackdelete:
		return "backdelete"
	case KindMoveHorizontal:
		return "move-horizontal"
	case KindMoveVertical:
		return "move-vertical"
	case KindSetMainCursor:
		return "set-main-cursor"
	case KindAddCursor:
		return "add-cursor"
	case KindScrollLines:
		return "scroll-lines"
	case KindSave:
		return "save"
	}
	return "unknown"
}

// Intent is one editing request aimed at a pane. Which fields matter
// depends on Kind; the rest are ignored.
type Intent struct {
	Kind Kind
	Pane cursor.PaneID

	Text   string // KindInsert
	Offset int    // moves and scrolling
	Start  int    // cursor placement, in bytes
}
