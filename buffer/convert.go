package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromByteOffset maps a UTF-8 byte offset into Text() to a position.
// Offsets inside a multi-byte rune are rejected.
func (b *Buffer) PosFromByteOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.docByteLen(), mode)
	if !ok {
		return Pos{}, false
	}
	return b.byteOffsetToPos(off)
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, mode)
	if !ok {
		return 0, false
	}
	return b.posToByteOffset(pos), true
}

func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.docRuneLen(), mode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, mode)
	if !ok {
		return 0, false
	}
	return b.posToRuneOffset(pos), true
}

// OffsetOf returns the rune offset of p, clamping p into bounds.
func (b *Buffer) OffsetOf(p Pos) int {
	off, _ := b.RuneOffsetFromPos(p, OffsetClamp)
	return off
}

// PosAt returns the position of rune offset off, clamping off into bounds.
func (b *Buffer) PosAt(off int) Pos {
	p, _ := b.PosFromRuneOffset(off, OffsetClamp)
	return p
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

// flatRunes returns the document as one rune slice with '\n' between rows.
// The slice is cached until the next text mutation and must not be modified.
func (b *Buffer) flatRunes() []rune {
	if b.flatValid {
		return b.flat
	}
	out := make([]rune, 0, b.docRuneLen())
	for row, line := range b.lines {
		if row > 0 {
			out = append(out, '\n')
		}
		out = append(out, line...)
	}
	b.flat = out
	b.flatValid = true
	return out
}

func (b *Buffer) docByteLen() int {
	total := 0
	for row, line := range b.lines {
		for _, r := range line {
			total += utf8.RuneLen(r)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) docRuneLen() int {
	if b.flatValid {
		return len(b.flat)
	}
	total := 0
	for row, line := range b.lines {
		total += len(line)
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) byteOffsetToPos(off int) (Pos, bool) {
	cur := 0

	for i, line := range b.lines {
		row := i + 1
		if off == cur {
			return Pos{Row: row, Col: 0}, true
		}

		for col, r := range line {
			next := cur + utf8.RuneLen(r)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, Col: col + 1}, true
			}
		}

		if i < len(b.lines)-1 {
			cur++
			if off == cur {
				return Pos{Row: row + 1, Col: 0}, true
			}
		}
	}

	return Pos{}, false
}

func (b *Buffer) runeOffsetToPos(off int) (Pos, bool) {
	cur := 0

	for i, line := range b.lines {
		if off <= cur+len(line) {
			if off < cur {
				return Pos{}, false
			}
			return Pos{Row: i + 1, Col: off - cur}, true
		}
		cur += len(line) + 1
	}

	return Pos{}, false
}

func (b *Buffer) posToByteOffset(pos Pos) int {
	off := 0

	for row := 1; row < pos.Row; row++ {
		for _, r := range b.line(row) {
			off += utf8.RuneLen(r)
		}
		off++
	}

	for _, r := range b.line(pos.Row)[:pos.Col] {
		off += utf8.RuneLen(r)
	}

	return off
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	off := 0

	for row := 1; row < pos.Row; row++ {
		off += len(b.line(row)) + 1
	}

	return off + pos.Col
}
