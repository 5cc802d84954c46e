package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/spanfind/internal/grapheme"
)

// lineCell is one grapheme cluster of a line as laid out on screen.
type lineCell struct {
	// Col and NextCol are rune columns, half-open [Col, NextCol).
	Col     int
	NextCol int
	Text    string

	StartCell int
	Width     int
}

// layoutLine splits line into grapheme cells with terminal widths. Tabs
// advance to the next tab stop.
func layoutLine(line []rune, tabWidth int) []lineCell {
	bounds := graphemeutil.Boundaries(line)
	if len(bounds) < 2 {
		return nil
	}

	out := make([]lineCell, 0, len(bounds)-1)
	cell := 0
	for i := 0; i+1 < len(bounds); i++ {
		text := string(line[bounds[i]:bounds[i+1]])
		w := graphemeCellWidth(text, cell, tabWidth)
		out = append(out, lineCell{
			Col:       bounds[i],
			NextCol:   bounds[i+1],
			Text:      text,
			StartCell: cell,
			Width:     w,
		})
		cell += w
	}
	return out
}

// lineWidth returns the total cell width of cells.
func lineWidth(cells []lineCell) int {
	if len(cells) == 0 {
		return 0
	}
	last := cells[len(cells)-1]
	return last.StartCell + last.Width
}

// cellForCol returns the screen cell at which rune column col starts. A
// column inside a cluster maps to the cluster's start.
func cellForCol(cells []lineCell, col int) int {
	for _, c := range cells {
		if col < c.NextCol {
			return c.StartCell
		}
	}
	return lineWidth(cells)
}

// colForCell maps a screen cell to the rune column of the cluster drawn
// there; cells past the end map to the line length.
func colForCell(cells []lineCell, cell int) int {
	for _, c := range cells {
		if cell < c.StartCell+c.Width {
			return c.Col
		}
	}
	if len(cells) == 0 {
		return 0
	}
	return cells[len(cells)-1].NextCol
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	if w < 1 {
		// Control characters still take a cell so the cursor can land on them.
		w = 1
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return tabWidth - visualCol%tabWidth
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
