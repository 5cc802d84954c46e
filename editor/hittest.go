package editor

import "github.com/iw2rmb/spanfind/buffer"

// ScreenToDoc maps viewport-local cell coordinates to a document position.
// Clicks in the gutter land at the start of the line; clicks past the end
// of a line or below the last line are clamped.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	row := clampInt(m.viewport.YOffset+y+1, 1, m.buf.LineCount())
	cell := maxInt(x-m.gutterWidth(), 0) + m.xOffset
	if x < m.gutterWidth() {
		cell = 0
	}
	cells := layoutLine([]rune(m.buf.Line(row)), m.cfg.tabWidth())
	return buffer.Pos{Row: row, Col: colForCell(cells, cell)}
}

// DocToScreen maps a document position to viewport-local cell coordinates.
// ok is false when the position is scrolled out of view.
func (m Model) DocToScreen(p buffer.Pos) (x, y int, ok bool) {
	p = m.buf.Index(p, 0)
	y = p.Row - 1 - m.viewport.YOffset
	if y < 0 || y >= m.viewport.Height {
		return 0, 0, false
	}
	cells := layoutLine([]rune(m.buf.Line(p.Row)), m.cfg.tabWidth())
	cell := cellForCol(cells, p.Col) - m.xOffset
	if cell < 0 || cell >= m.contentWidth() {
		return 0, 0, false
	}
	return m.gutterWidth() + cell, y, true
}
