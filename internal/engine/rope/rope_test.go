package rope

import (
	"strings"
	"testing"
)

func TestNewRopeIsEmpty(t *testing.T) {
	r := New()

	if !r.IsEmpty() {
		t.Error("new rope should be empty")
	}
	if r.Len() != 0 {
		t.Errorf("expected length 0, got %d", r.Len())
	}
	if r.NumLines() != 1 {
		t.Errorf("expected 1 line, got %d", r.NumLines())
	}
}

func TestFromString(t *testing.T) {
	text := "Hello, World!"
	r := FromString(text)

	if r.String() != text {
		t.Errorf("expected %q, got %q", text, r.String())
	}
	if r.Len() != len(text) {
		t.Errorf("expected length %d, got %d", len(text), r.Len())
	}
}

func TestFromStringLarge(t *testing.T) {
	text := strings.Repeat("the quick brown fox\n", 500)
	r := FromString(text)

	if r.String() != text {
		t.Error("large rope round-trip mismatch")
	}
	if r.Len() != len(text) {
		t.Errorf("expected length %d, got %d", len(text), r.Len())
	}
	if r.NumLines() != 501 {
		t.Errorf("expected 501 lines, got %d", r.NumLines())
	}
}

func TestInsert(t *testing.T) {
	r := FromString("Hello World")
	r = r.Insert(5, ",")

	if r.String() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", r.String())
	}
}

func TestInsertAtStartAndEnd(t *testing.T) {
	r := FromString("middle")
	r = r.Insert(0, "start ")
	r = r.Insert(r.Len(), " end")

	if r.String() != "start middle end" {
		t.Errorf("unexpected result %q", r.String())
	}
}

func TestInsertIntoLargeRope(t *testing.T) {
	base := strings.Repeat("abcdefghij", 1000)
	r := FromString(base)
	r = r.Insert(5000, "XYZ")

	want := base[:5000] + "XYZ" + base[5000:]
	if r.String() != want {
		t.Error("insert into large rope mismatch")
	}
}

func TestDelete(t *testing.T) {
	r := FromString("Hello, World")
	r = r.Delete(5, 7)

	if r.String() != "HelloWorld" {
		t.Errorf("expected 'HelloWorld', got %q", r.String())
	}
}

func TestDeleteAll(t *testing.T) {
	r := FromString("gone")
	r = r.Delete(0, r.Len())

	if !r.IsEmpty() {
		t.Errorf("expected empty rope, got %q", r.String())
	}
}

func TestDeleteClampsRange(t *testing.T) {
	r := FromString("abc")
	r = r.Delete(2, 100)

	if r.String() != "ab" {
		t.Errorf("expected 'ab', got %q", r.String())
	}
}

func TestImmutability(t *testing.T) {
	original := FromString("unchanged")
	_ = original.Insert(0, "x")
	_ = original.Delete(0, 3)

	if original.String() != "unchanged" {
		t.Errorf("original rope was mutated: %q", original.String())
	}
}

func TestSlice(t *testing.T) {
	r := FromString("Hello, World")

	if got := r.Slice(7, 12); got != "World" {
		t.Errorf("expected 'World', got %q", got)
	}
	if got := r.Slice(0, 5); got != "Hello" {
		t.Errorf("expected 'Hello', got %q", got)
	}
	if got := r.Slice(3, 3); got != "" {
		t.Errorf("expected empty slice, got %q", got)
	}
}

func TestSplitAndConcat(t *testing.T) {
	r := FromString("left|right")
	left, right := r.Split(5)

	if left.String() != "left|" {
		t.Errorf("expected 'left|', got %q", left.String())
	}
	if right.String() != "right" {
		t.Errorf("expected 'right', got %q", right.String())
	}
	if !left.Concat(right).Equals(r) {
		t.Error("concat of split parts should equal original")
	}
}

func TestByteAt(t *testing.T) {
	r := FromString("abc")

	if b, ok := r.ByteAt(1); !ok || b != 'b' {
		t.Errorf("expected 'b', got %q ok=%v", b, ok)
	}
	if _, ok := r.ByteAt(3); ok {
		t.Error("offset past end should not be ok")
	}
}

func TestByteOfLine(t *testing.T) {
	r := FromString("ab\ncd\nef")

	cases := []struct{ line, want int }{
		{0, 0}, {1, 3}, {2, 6}, {3, 8}, {99, 8},
	}
	for _, c := range cases {
		if got := r.ByteOfLine(c.line); got != c.want {
			t.Errorf("ByteOfLine(%d) = %d, want %d", c.line, got, c.want)
		}
	}
}

func TestLineOfByte(t *testing.T) {
	r := FromString("ab\ncd\nef")

	cases := []struct{ offset, want int }{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {7, 2}, {8, 2},
	}
	for _, c := range cases {
		if got := r.LineOfByte(c.offset); got != c.want {
			t.Errorf("LineOfByte(%d) = %d, want %d", c.offset, got, c.want)
		}
	}
}

func TestLineQueriesLarge(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("0123456789\n")
	}
	r := FromString(sb.String())

	if r.NumLines() != 2001 {
		t.Fatalf("expected 2001 lines, got %d", r.NumLines())
	}
	if got := r.ByteOfLine(1500); got != 1500*11 {
		t.Errorf("ByteOfLine(1500) = %d, want %d", got, 1500*11)
	}
	if got := r.LineOfByte(1500*11 + 4); got != 1500 {
		t.Errorf("LineOfByte = %d, want 1500", got)
	}
}

func TestNumLinesTrailingNewline(t *testing.T) {
	r := FromString("one\ntwo\n")

	if r.NumLines() != 3 {
		t.Errorf("expected 3 lines (trailing newline opens a blank line), got %d", r.NumLines())
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	for i := 0; i < 100; i++ {
		b.WriteString("chunk of text ")
	}
	r := b.Build()

	want := strings.Repeat("chunk of text ", 100)
	if r.String() != want {
		t.Error("builder output mismatch")
	}
}

func TestFromReader(t *testing.T) {
	text := strings.Repeat("streamed data\n", 300)
	r, err := FromReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	if r.String() != text {
		t.Error("FromReader round-trip mismatch")
	}
}

func FuzzEditOps(f *testing.F) {
	f.Add("hello\nworld", 3, 5, "X")
	f.Add("", 0, 0, "abc")
	f.Add("héllo wörld", 2, 6, "\n\n")

	f.Fuzz(func(t *testing.T, text string, start, end int, ins string) {
		r := FromString(text)
		if start < 0 || end < start || end > len(text) {
			return
		}
		if !isUTF8BoundaryStr(text, start) || !isUTF8BoundaryStr(text, end) {
			return
		}

		deleted := r.Delete(start, end)
		wantDel := text[:start] + text[end:]
		if deleted.String() != wantDel {
			t.Fatalf("delete mismatch: got %q want %q", deleted.String(), wantDel)
		}

		inserted := r.Insert(start, ins)
		wantIns := text[:start] + ins + text[start:]
		if inserted.String() != wantIns {
			t.Fatalf("insert mismatch: got %q want %q", inserted.String(), wantIns)
		}

		if deleted.NumLines() != strings.Count(wantDel, "\n")+1 {
			t.Fatalf("line count mismatch after delete")
		}
	})
}

func isUTF8BoundaryStr(s string, i int) bool {
	return i == 0 || i == len(s) || utf8Start(s[i])
}
