package editor

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spanfind/buffer"
)

// tagLayer holds one tag per rune for the rows that carry any tags. Within
// a layer, later ranges overwrite earlier ones.
type tagLayer map[int][]string

func (l tagLayer) add(lines [][]rune, r buffer.Range, tag string) {
	lineLen := func(row int) int {
		if row < 1 || row > len(lines) {
			return 0
		}
		return len(lines[row-1])
	}
	r = buffer.NormalizeRange(buffer.ClampRange(r, len(lines), lineLen))
	for row := r.Start.Row; row <= r.End.Row; row++ {
		start, end := 0, lineLen(row)
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		if start >= end {
			continue
		}
		tags := l[row]
		if tags == nil {
			tags = make([]string, lineLen(row))
			l[row] = tags
		}
		for i := start; i < end; i++ {
			tags[i] = tag
		}
	}
}

func (l tagLayer) at(row, col int) string {
	tags := l[row]
	if col < 0 || col >= len(tags) {
		return ""
	}
	return tags[col]
}

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	lines := make([][]rune, n)
	for row := 1; row <= n; row++ {
		lines[row-1] = []rune(m.buf.Line(row))
	}

	syntax := tagLayer{}
	for _, tok := range m.highlightTokens() {
		syntax.add(lines, tok.Range, tok.Tag)
	}
	// Search highlights sit above syntax colouring.
	matches := tagLayer{}
	if m.find != nil {
		for _, h := range m.find.session.Highlights() {
			matches.add(lines, h.Span.Range(), h.Tag)
		}
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	left := maxInt(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, 0, n)
	for row := 1; row <= n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		line := lines[row-1]
		lr := lineRender{
			st:        m.cfg.Style,
			style:     m.tagStyle,
			row:       row,
			line:      line,
			cells:     layoutLine(line, m.cfg.tabWidth()),
			cursorCol: -1,
			syntax:    syntax,
			matches:   matches,
			left:      left,
			right:     right,
		}
		if m.focused && row == cursor.Row {
			lr.cursorCol = cursor.Col
		}
		lr.selStart, lr.selEnd, lr.hasSel = selectionColsForRow(sel, selOK, row, len(line))
		sb.WriteString(lr.render())

		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func (m *Model) tagStyle(tag string) (lipgloss.Style, bool) {
	if tag == "" {
		return lipgloss.Style{}, false
	}
	return m.cfg.Theme.Style(tag)
}

type lineRender struct {
	st    Style
	style func(tag string) (lipgloss.Style, bool)

	row   int
	line  []rune
	cells []lineCell

	// cursorCol is -1 when the cursor is not drawn on this row.
	cursorCol int

	selStart, selEnd int
	hasSel           bool

	syntax, matches tagLayer

	// Visible cell window [left, right).
	left, right int
}

func (lr lineRender) render() string {
	var sb strings.Builder
	for _, c := range lr.cells {
		end := c.StartCell + c.Width
		if end <= lr.left {
			continue
		}
		if c.StartCell >= lr.right {
			break
		}

		style := lr.styleFor(c)
		if c.StartCell < lr.left || end > lr.right {
			// Partially visible wide cluster: keep alignment with blanks.
			w := minInt(end, lr.right) - maxInt(c.StartCell, lr.left)
			sb.WriteString(style.Render(strings.Repeat(" ", w)))
			continue
		}
		sb.WriteString(style.Render(displayText(c)))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if lr.cursorCol >= len(lr.line) {
		cell := lineWidth(lr.cells)
		if cell >= lr.left && cell < lr.right {
			sb.WriteString(lr.st.Cursor.Render(" "))
		}
	}
	return sb.String()
}

func (lr lineRender) styleFor(c lineCell) lipgloss.Style {
	if lr.cursorCol >= c.Col && lr.cursorCol < c.NextCol {
		return lr.st.Cursor
	}
	if lr.hasSel && c.Col < lr.selEnd && c.NextCol > lr.selStart {
		return lr.st.Selection
	}

	style := lr.st.Text
	if st, ok := lr.style(lr.syntax.at(lr.row, c.Col)); ok {
		style = st.Inherit(style)
	}
	if st, ok := lr.style(lr.matches.at(lr.row, c.Col)); ok {
		style = st.Inherit(style)
	}
	return style
}

// displayText returns what to draw for a cell: tabs expand to spaces and
// control characters show as a replacement mark.
func displayText(c lineCell) string {
	if c.Text == "\t" {
		return strings.Repeat(" ", c.Width)
	}
	if r, _ := utf8.DecodeRuneInString(c.Text); unicode.IsControl(r) {
		return "\uFFFD"
	}
	return c.Text
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	start = clampInt(start, 0, lineLen)
	end = clampInt(end, 0, lineLen)
	return start, end, start < end
}

func gutterDigits(lineCount int) int {
	return maxInt(len(fmt.Sprint(lineCount)), 1)
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// contentWidth is the text area width in cells, or 0 before the first
// SetSize.
func (m Model) contentWidth() int {
	return maxInt(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize()-m.gutterWidth(), 0)
}

func (m Model) renderStatusLine() string {
	cur := m.buf.Cursor()
	text := fmt.Sprintf("Ln %d, Col %d", cur.Row, cur.Col+1)
	return m.cfg.Style.StatusLine.Width(m.width).Render(text)
}
