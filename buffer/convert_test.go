package buffer

import "testing"

func TestBuffer_RuneOffsets_RoundTrip(t *testing.T) {
	b := New("aπ\n\nテb", Options{})

	cases := []struct {
		off int
		pos Pos
	}{
		{off: 0, pos: Pos{Row: 1, Col: 0}},
		{off: 2, pos: Pos{Row: 1, Col: 2}},
		{off: 3, pos: Pos{Row: 2, Col: 0}},
		{off: 4, pos: Pos{Row: 3, Col: 0}},
		{off: 6, pos: Pos{Row: 3, Col: 2}},
	}
	for _, tc := range cases {
		got, ok := b.PosFromRuneOffset(tc.off, OffsetError)
		if !ok || got != tc.pos {
			t.Fatalf("PosFromRuneOffset(%d)=(%v,%v), want (%v,true)", tc.off, got, ok, tc.pos)
		}
		off, ok := b.RuneOffsetFromPos(tc.pos, OffsetError)
		if !ok || off != tc.off {
			t.Fatalf("RuneOffsetFromPos(%v)=(%d,%v), want (%d,true)", tc.pos, off, ok, tc.off)
		}
	}
}

func TestBuffer_RuneOffsets_ClampModes(t *testing.T) {
	b := New("ab", Options{})

	if _, ok := b.PosFromRuneOffset(3, OffsetError); ok {
		t.Fatalf("expected out-of-range offset to fail")
	}
	if got, ok := b.PosFromRuneOffset(3, OffsetClamp); !ok || got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("clamped pos=(%v,%v), want (1.2,true)", got, ok)
	}
	if _, ok := b.RuneOffsetFromPos(Pos{Row: 1, Col: 9}, OffsetError); ok {
		t.Fatalf("expected out-of-range pos to fail")
	}
	if got, want := b.OffsetOf(End), 2; got != want {
		t.Fatalf("OffsetOf(End)=%d, want %d", got, want)
	}
	if got, want := b.PosAt(-4), Start; got != want {
		t.Fatalf("PosAt(-4)=%v, want %v", got, want)
	}
}

func TestBuffer_ByteOffsets(t *testing.T) {
	b := New("aπ\nb", Options{})

	if got, ok := b.ByteOffsetFromPos(Pos{Row: 2, Col: 0}, OffsetError); !ok || got != 4 {
		t.Fatalf("ByteOffsetFromPos=(%d,%v), want (4,true)", got, ok)
	}
	if got, ok := b.PosFromByteOffset(3, OffsetError); !ok || got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("PosFromByteOffset(3)=(%v,%v), want (1.2,true)", got, ok)
	}
	if _, ok := b.PosFromByteOffset(2, OffsetError); ok {
		t.Fatalf("offset inside a multi-byte rune must fail")
	}
}

func TestBuffer_FlatCacheInvalidatedByEdits(t *testing.T) {
	b := New("abc", Options{})
	_ = b.flatRunes()

	b.Insert(End, "\nd")
	if got, want := string(b.flatRunes()), "abc\nd"; got != want {
		t.Fatalf("flat=%q, want %q", got, want)
	}

	b.Undo()
	if got, want := string(b.flatRunes()), "abc"; got != want {
		t.Fatalf("flat after undo=%q, want %q", got, want)
	}
}
