package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 1, Col: 1})
	v := b.Version()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 2, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if got := b.TextVersion(); got != 1 {
		t.Fatalf("text version=%d, want 1", got)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 1}, End: Pos{Row: 1, Col: 4}}) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertRune_Unicode(t *testing.T) {
	b := New("", Options{})
	b.InsertRune('π')
	b.InsertRune('テ')

	if got, want := b.Text(), "πテ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_InsertDeleteReplace_ReturnPositions(t *testing.T) {
	b := New("the cat", Options{})

	end := b.Insert(Pos{Row: 1, Col: 4}, "big\nfat ")
	if got, want := b.Text(), "the big\nfat cat"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := end, (Pos{Row: 2, Col: 4}); got != want {
		t.Fatalf("insert end=%v, want %v", got, want)
	}

	b.Delete(Pos{Row: 1, Col: 3}, Pos{Row: 2, Col: 3})
	if got, want := b.Text(), "the cat"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	next := b.Replace(Range{Start: Pos{Row: 1, Col: 4}, End: Pos{Row: 1, Col: 7}}, "dog")
	if got, want := b.Text(), "the dog"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := next, (Pos{Row: 1, Col: 7}); got != want {
		t.Fatalf("replace end=%v, want %v", got, want)
	}
}

func TestBuffer_Replace_SameTextIsNoOp(t *testing.T) {
	b := New("abc", Options{})
	v := b.TextVersion()

	next := b.Replace(Range{Start: Pos{Row: 1, Col: 0}, End: Pos{Row: 1, Col: 2}}, "ab")
	if got, want := next, (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("next=%v, want %v", got, want)
	}
	if got := b.TextVersion(); got != v {
		t.Fatalf("text version=%d, want %d", got, v)
	}
	if b.CanUndo() {
		t.Fatalf("no-op replace must not record undo")
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 2, Col: 0})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, Col: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteSelection_SpanningMultipleLines(t *testing.T) {
	b := New("ab\ncd\nef", Options{})
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 1}, End: Pos{Row: 3, Col: 1}})

	b.DeleteSelection()
	if got, want := b.Text(), "af"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Delete_NoOpsDoNotBumpVersion(t *testing.T) {
	b := New("a", Options{})
	v := b.Version()

	b.DeleteBackward()
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}

	b.SetCursor(Pos{Row: 1, Col: 1})
	v2 := b.Version()
	b.DeleteForward()
	if got := b.Version(); got != v2 {
		t.Fatalf("version=%d, want %d", got, v2)
	}
}

func TestBuffer_Group_SingleUndoStep(t *testing.T) {
	b := New("aaa", Options{})

	b.Group(func() {
		b.Replace(Range{Start: Pos{Row: 1, Col: 0}, End: Pos{Row: 1, Col: 1}}, "b")
		b.Group(func() {
			b.Insert(End, "!")
		})
	})
	if got, want := b.Text(), "baa!"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := len(ch.AppliedEdits), 2; got != want {
		t.Fatalf("applied edits=%d, want %d", got, want)
	}

	if ok := b.Undo(); !ok {
		t.Fatalf("expected undo")
	}
	if got, want := b.Text(), "aaa"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("expected a single undo step")
	}
}
