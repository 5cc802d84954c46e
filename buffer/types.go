package buffer

import (
	"fmt"
	"math"
)

// Pos points into the logical document by (row, col).
// Row is 1-based, Col is a 0-based rune offset within the row.
type Pos struct {
	Row int
	Col int
}

// Start is the first position of every document.
var Start = Pos{Row: 1, Col: 0}

// End is a sentinel one past the last character. Buffer operations resolve
// it by clamping into document bounds.
var End = Pos{Row: math.MaxInt, Col: math.MaxInt}

func (p Pos) String() string {
	if p == End {
		return "end"
	}
	return fmt.Sprintf("%d.%d", p.Row, p.Col)
}

// Before reports whether p sorts strictly before q.
func (p Pos) Before(q Pos) bool { return ComparePos(p, q) < 0 }

// After reports whether p sorts strictly after q.
func (p Pos) After(q Pos) bool { return ComparePos(p, q) > 0 }

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies in [Start, End).
func (r Range) Contains(p Pos) bool {
	return ComparePos(r.Start, p) <= 0 && ComparePos(p, r.End) < 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the rune length of the given 1-based row.
//
// The returned Pos always satisfies:
// - 1 <= Row <= rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 1, rowCount)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
