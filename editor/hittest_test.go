package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/spanfind/buffer"
)

func TestHitTest_NoLineNums_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m.viewport.YOffset = 1

	if got, want := m.ScreenToDoc(2, 0), (buffer.Pos{Row: 2, Col: 2}); got != want {
		t.Fatalf("pos at (2,0) with yoffset=1: got %v, want %v", got, want)
	}

	// Clamp x past end of line.
	if got, want := m.ScreenToDoc(999, 0), (buffer.Pos{Row: 2, Col: 3}); got != want {
		t.Fatalf("pos at (999,0): got %v, want %v", got, want)
	}

	// Clamp y past the last line.
	if got, want := m.ScreenToDoc(0, 99), (buffer.Pos{Row: 3, Col: 0}); got != want {
		t.Fatalf("pos at (0,99): got %v, want %v", got, want)
	}
}

func TestHitTest_WithLineNums_GutterMapsToStartOfLine(t *testing.T) {
	m := New(Config{Text: "abcd\nefgh", ShowLineNums: true})

	// 2 lines => 1 digit + 1 gutter space => width 2.
	for _, x := range []int{0, 1, 2} {
		if got, want := m.ScreenToDoc(x, 0), (buffer.Pos{Row: 1, Col: 0}); got != want {
			t.Fatalf("click x=%d: got %v, want %v", x, got, want)
		}
	}
	if got, want := m.ScreenToDoc(3, 0), (buffer.Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("second cell x=3: got %v, want %v", got, want)
	}
}

func TestHitTest_WideAndTabCells(t *testing.T) {
	m := New(Config{Text: "界\tb", TabWidth: 4})

	cases := []struct {
		x    int
		want int
	}{
		{0, 0}, {1, 0}, // wide cluster
		{2, 1}, {3, 1}, // tab from cell 2 to 4
		{4, 2},
		{5, 3},
	}
	for _, tc := range cases {
		if got := m.ScreenToDoc(tc.x, 0).Col; got != tc.want {
			t.Fatalf("col at x=%d: got %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestDocToScreen_RoundTrip(t *testing.T) {
	m := New(Config{Text: "ab\ncd\nef", ShowLineNums: true})
	m = m.SetSize(10, 2)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	top := m.ViewportState().TopRow

	x, y, ok := m.DocToScreen(buffer.Pos{Row: top, Col: 1})
	if !ok || x != 3 || y != 0 {
		t.Fatalf("DocToScreen(row %d,col 1): got (%d,%d,%v), want (3,0,true)", top, x, y, ok)
	}
	if got, want := m.ScreenToDoc(x, y), (buffer.Pos{Row: top, Col: 1}); got != want {
		t.Fatalf("round trip: got %v, want %v", got, want)
	}

	if _, _, ok := m.DocToScreen(buffer.Pos{Row: top - 1, Col: 0}); top > 1 && ok {
		t.Fatalf("row above viewport reported visible")
	}
}

func TestMouse_ClickAndDragSelects(t *testing.T) {
	m := New(Config{Text: "hello\nworld"})
	m = m.SetSize(20, 2)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 1, Y: 0})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft, X: 3, Y: 1})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: 3, Y: 1})

	r, ok := m.buf.Selection()
	if !ok {
		t.Fatalf("expected a selection after drag")
	}
	want := buffer.Range{Start: buffer.Pos{Row: 1, Col: 1}, End: buffer.Pos{Row: 2, Col: 3}}
	if r != want {
		t.Fatalf("selection after drag: got %v, want %v", r, want)
	}
	if got := m.buf.Get(r.Start, r.End); got != "ello\nwor" {
		t.Fatalf("selected text: got %q, want %q", got, "ello\nwor")
	}
}
