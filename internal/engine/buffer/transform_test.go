package buffer

import (
	"testing"

	"github.com/vellum-editor/vellum/internal/engine/cursor"
)

const paneID = cursor.PaneID(1)

// pane builds a single test pane with cursors at the given offsets.
// The first offset is the main cursor.
func pane(starts ...int) []cursor.Pane {
	sels := make([]cursor.Selection, len(starts))
	for i, s := range starts {
		sels[i] = cursor.At(s)
	}
	p := cursor.NewPane(0, paneID).WithSelections(sels, starts[0], 0)
	return []cursor.Pane{p}
}

func starts(panes []cursor.Pane) []int {
	sels := panes[0].Selections()
	out := make([]int, len(sels))
	for i, s := range sels {
		out[i] = s.Start
	}
	return out
}

func wantStarts(t *testing.T, panes []cursor.Pane, want ...int) {
	t.Helper()
	got := starts(panes)
	if len(got) != len(want) {
		t.Fatalf("cursors at %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cursors at %v, want %v", got, want)
		}
	}
}

func TestInsertMultiCursor(t *testing.T) {
	b := FromString("abcdefghigh")
	out, panes := b.Insert("xz", pane(1, 5, 8), paneID)
	if got := out.Contents.String(); got != "axzbcdexzfghxzigh" {
		t.Fatalf("contents = %q, want %q", got, "axzbcdexzfghxzigh")
	}
	wantStarts(t, panes, 3, 9, 14)
	if panes[0].MainCursorStart != 3 {
		t.Fatalf("main cursor = %d, want 3", panes[0].MainCursorStart)
	}
	// Receiver untouched.
	if b.Contents.String() != "abcdefghigh" {
		t.Fatalf("insert mutated receiver: %q", b.Contents.String())
	}
}

func TestInsertUpdatesColOffset(t *testing.T) {
	b := FromString("ab")
	out, panes := b.Insert("\n", pane(2), paneID)
	if got := out.Contents.String(); got != "ab\n" {
		t.Fatalf("contents = %q", got)
	}
	wantStarts(t, panes, 3)
	if panes[0].GraphemeColOffset != 0 {
		t.Fatalf("col offset = %d, want 0 after newline", panes[0].GraphemeColOffset)
	}
}

func TestInsertEmptyTextIsNoop(t *testing.T) {
	b := FromString("abc")
	out, panes := b.Insert("", pane(1), paneID)
	if out.Contents.String() != "abc" {
		t.Fatal("empty insert changed contents")
	}
	wantStarts(t, panes, 1)
}

func TestBackdeleteMultiCursor(t *testing.T) {
	b := FromString("abcdefghigh")
	out, panes := b.BackdeleteCursor(pane(1, 5, 8), paneID)
	if got := out.Contents.String(); got != "bcdfgigh" {
		t.Fatalf("contents = %q, want %q", got, "bcdfgigh")
	}
	wantStarts(t, panes, 0, 3, 5)
}

func TestBackdeleteAtStart(t *testing.T) {
	b := FromString("abc")
	out, panes := b.BackdeleteCursor(pane(0), paneID)
	if out.Contents.String() != "abc" {
		t.Fatalf("contents = %q, want unchanged", out.Contents.String())
	}
	wantStarts(t, panes, 0)
}

func TestBackdeleteMergesCollidingCursors(t *testing.T) {
	b := FromString("abcde")
	out, panes := b.BackdeleteCursor(pane(3, 2), paneID)
	if got := out.Contents.String(); got != "ade" {
		t.Fatalf("contents = %q, want %q", got, "ade")
	}
	wantStarts(t, panes, 1)
	if panes[0].MainCursorStart != 1 {
		t.Fatalf("main cursor = %d, want 1", panes[0].MainCursorStart)
	}
}

func TestBackdeleteRemovesWholeCluster(t *testing.T) {
	// "aé" is a two-cluster string: "a" and a combining "é".
	b := FromString("aé")
	out, panes := b.BackdeleteCursor(pane(4), paneID)
	if got := out.Contents.String(); got != "a" {
		t.Fatalf("contents = %q, want %q", got, "a")
	}
	wantStarts(t, panes, 1)
}

func TestMoveHorizontalOverClusters(t *testing.T) {
	// "a", combining "é", "b": boundaries at 0, 1, 4, 5.
	b := FromString("aéb")
	_, panes := b.MoveHorizontal(1, pane(1), paneID)
	wantStarts(t, panes, 4)
	_, panes = b.MoveHorizontal(-1, panes, paneID)
	wantStarts(t, panes, 1)
}

func TestMoveHorizontalClampsAtEnds(t *testing.T) {
	b := FromString("ab")
	_, panes := b.MoveHorizontal(-3, pane(1), paneID)
	wantStarts(t, panes, 0)
	_, panes = b.MoveHorizontal(10, panes, paneID)
	wantStarts(t, panes, 2)
}

func TestMoveHorizontalAdjustsColOffset(t *testing.T) {
	b := FromString("abcd")
	p := pane(2)
	p[0] = p[0].WithSelections(p[0].Selections(), 2, 2)
	_, panes := b.MoveHorizontal(1, p, paneID)
	if panes[0].GraphemeColOffset != 3 {
		t.Fatalf("col offset = %d, want 3", panes[0].GraphemeColOffset)
	}
	_, panes = b.MoveHorizontal(-10, panes, paneID)
	if panes[0].GraphemeColOffset != 0 {
		t.Fatalf("col offset = %d, want clamp at 0", panes[0].GraphemeColOffset)
	}
}

func TestMoveVerticalRoundTrip(t *testing.T) {
	b := FromString("hello\nhi\nworld")
	p := pane(4)
	p[0] = p[0].WithSelections(p[0].Selections(), 4, 4)

	_, panes := b.MoveVertical(1, p, paneID)
	// "hi" is shorter than the remembered column, so the cursor stops
	// at the line end.
	wantStarts(t, panes, 8)
	if panes[0].GraphemeColOffset != 4 {
		t.Fatalf("col offset = %d, want preserved 4", panes[0].GraphemeColOffset)
	}

	_, panes = b.MoveVertical(1, panes, paneID)
	wantStarts(t, panes, 13)

	_, panes = b.MoveVertical(-2, panes, paneID)
	wantStarts(t, panes, 4)
}

func TestMoveVerticalClampsAtEnds(t *testing.T) {
	b := FromString("ab\ncd")
	_, panes := b.MoveVertical(-5, pane(4), paneID)
	wantStarts(t, panes, 0)
	_, panes = b.MoveVertical(9, pane(1), paneID)
	wantStarts(t, panes, 5)
}

func TestMoveVerticalMultiCursor(t *testing.T) {
	b := FromString("abc\ndef\nghi")
	p := pane(1, 5)
	p[0] = p[0].WithSelections(p[0].Selections(), 1, 1)
	_, panes := b.MoveVertical(1, p, paneID)
	wantStarts(t, panes, 5, 9)
}

func TestTransformPanicsOnMultiplePanes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic with two involved panes")
		}
	}()
	b := FromString("ab")
	panes := []cursor.Pane{cursor.NewPane(0, 1), cursor.NewPane(0, 2)}
	b.Insert("x", panes, 1)
}

func TestTransformPanicsOnForeignActivePane(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic when active pane is not involved")
		}
	}()
	b := FromString("ab")
	b.Insert("x", pane(0), cursor.PaneID(99))
}

func TestGraphemeColOffset(t *testing.T) {
	b := FromString("aéb\ncd")
	if got := b.GraphemeColOffset(4); got != 2 {
		t.Fatalf("col of offset 4 = %d, want 2", got)
	}
	if got := b.GraphemeColOffset(7); got != 1 {
		t.Fatalf("col of offset 7 = %d, want 1", got)
	}
}
