package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Buffer is not safe for concurrent use; it is owned by a single UI loop.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt   Options
	hist  historyState
	group *txn

	lastChange    Change
	hasLastChange bool

	// flat caches the document as one rune slice for searching.
	flat      []rune
	flatValid bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:  splitLines(text),
		cursor: Start,
		opt:    opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increments on every observable state change (text, cursor, selection).
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the document text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// LineCount returns the number of logical rows (at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of the 1-based row, or "" when out of range.
func (b *Buffer) Line(row int) string {
	if row < 1 || row > len(b.lines) {
		return ""
	}
	return string(b.lines[row-1])
}

// LastPos returns the position just after the final character.
func (b *Buffer) LastPos() Pos {
	last := len(b.lines)
	return Pos{Row: last, Col: len(b.lines[last-1])}
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if NormalizeRange(clamped).IsEmpty() {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, false
	if next.active {
		nextRange, nextOK = NormalizeRange(clamped), true
	}

	b.sel = next
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// Get returns the text in [start, end). Positions are clamped into bounds
// and reversed ranges are normalized.
func (b *Buffer) Get(start, end Pos) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(Range{Start: start, End: end}, len(b.lines), b.lineLen)))
}

// Index resolves p (including End and out-of-range positions) into document
// bounds, then moves it by chars characters. A line break counts as one
// character. The result is clamped to [Start, LastPos()].
func (b *Buffer) Index(p Pos, chars int) Pos {
	p = b.clampPos(p)
	if chars == 0 {
		return p
	}
	off := b.posToRuneOffset(p) + chars
	off = clampInt(off, 0, b.docRuneLen())
	next, _ := b.runeOffsetToPos(off)
	return next
}

func (b *Buffer) lineLen(row int) int {
	if row < 1 || row > len(b.lines) {
		return 0
	}
	return len(b.lines[row-1])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func (b *Buffer) line(row int) []rune {
	return b.lines[row-1]
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
