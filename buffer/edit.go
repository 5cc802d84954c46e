package buffer

import "strings"

// txn collects the effective edits of one undoable operation.
type txn struct {
	prev    bufferSnapshot
	change  changeBuilder
	changed bool
}

func (b *Buffer) beginTxn() *txn {
	if b.group != nil {
		return b.group
	}
	return &txn{prev: b.snapshot(), change: b.beginChange()}
}

func (b *Buffer) endTxn(t *txn) {
	if t == b.group || !t.changed {
		return
	}
	b.recordUndo(t.prev)
	b.commitChange(t.change)
}

// edit replaces r with text inside t and moves the cursor to the end of the
// inserted text. It reports the cursor position and whether anything changed.
func (b *Buffer) edit(t *txn, r Range, text string) (Pos, bool) {
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return applied.RangeAfter.End, false
	}
	t.changed = true
	t.change.addAppliedEdit(applied)
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	return nextCursor, true
}

// Group runs fn and records every mutation it performs as one undo step and
// one Change. Nested calls join the outermost group.
func (b *Buffer) Group(fn func()) {
	if b.group != nil {
		fn()
		return
	}
	t := b.beginTxn()
	b.group = t
	defer func() {
		b.group = nil
		b.endTxn(t)
	}()
	fn()
}

// Insert inserts text at p and returns the position just after it.
func (b *Buffer) Insert(p Pos, text string) Pos {
	p = b.clampPos(p)
	return b.Replace(Range{Start: p, End: p}, text)
}

// Delete removes the text in [start, end).
func (b *Buffer) Delete(start, end Pos) {
	b.Replace(Range{Start: start, End: end}, "")
}

// Replace replaces the text in r with text and returns the position just
// after the inserted text.
func (b *Buffer) Replace(r Range, text string) Pos {
	t := b.beginTxn()
	next, _ := b.edit(t, r, text)
	b.endTxn(t)
	return next
}

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.Replace(r, s)
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	start := b.Index(b.cursor, -1)
	if start == b.cursor {
		return
	}
	b.Replace(Range{Start: start, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	end := b.Index(b.cursor, 1)
	if end == b.cursor {
		return
	}
	b.Replace(Range{Start: b.cursor, End: end}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.Replace(r, "")
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{RangeAfter: r}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		end := b.Index(r.Start, len([]rune(text)))
		return end, AppliedEdit{RangeAfter: Range{Start: r.Start, End: end}}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]rune(nil), b.line(startRow)[:startCol]...)
	suffix := append([]rune(nil), b.line(endRow)[endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]rune, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, []rune(p))
	}

	repl := make([][]rune, 0, len(ins))
	if len(ins) == 1 {
		line := make([]rune, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]rune, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]rune(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	before := b.lines[:startRow-1]
	after := b.lines[endRow:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}

	b.lines = out
	b.flatValid = false
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter: Range{
			Start: r.Start,
			End:   nextCursor,
		},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]rune, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow := r.Start.Row
	endRow := r.End.Row
	startCol := r.Start.Col
	endCol := r.End.Col

	if startRow == endRow {
		return string(lines[startRow-1][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		line := lines[row-1]
		partStart := 0
		partEnd := len(line)
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(string(line[partStart:partEnd]))
	}
	return sb.String()
}
