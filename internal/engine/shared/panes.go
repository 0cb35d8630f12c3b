package shared

import (
	"fmt"

	"github.com/vellum-editor/vellum/internal/engine/cursor"
)

// InvolvedPanes returns every pane viewing bufID, in list order. A
// buffer mutation is defined over exactly this set.
func InvolvedPanes(v View[cursor.Pane], bufID cursor.BufferID) []cursor.Pane {
	var out []cursor.Pane
	for _, p := range v.Load() {
		if p.BufferID == bufID {
			out = append(out, p)
		}
	}
	return out
}

// StoreAll publishes each pane over the entry sharing its ID, in one
// atomic swap. Panics when a pane has no existing entry; panes are
// created through Store, never here.
func StoreAll(l *List[cursor.Pane], panes []cursor.Pane) {
	cur := *l.items.Load()
	next := make([]cursor.Pane, len(cur))
	copy(next, cur)
	for _, p := range panes {
		idx := -1
		for i := range next {
			if next[i].ID == p.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			panic(fmt.Sprintf("shared.StoreAll: pane %d has no entry", p.ID))
		}
		next[idx] = p
	}
	l.items.Store(&next)
}
