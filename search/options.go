package search

import (
	"fmt"

	"github.com/iw2rmb/spanfind/buffer"
)

// Options describe what to look for.
type Options struct {
	Pattern       string
	Regex         bool
	CaseSensitive bool
	// WholeWord keeps only matches whose neighbouring characters are not
	// word characters. It filters matches, it never adds new ones.
	WholeWord bool
}

func (o Options) searchOptions() buffer.SearchOptions {
	return buffer.SearchOptions{Regex: o.Regex, CaseSensitive: o.CaseSensitive}
}

// Span is one match occurrence: the half-open text range [Start, End).
type Span struct {
	Start buffer.Pos
	End   buffer.Pos
}

func (s Span) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

// Range returns s as a buffer range.
func (s Span) Range() buffer.Range {
	return buffer.Range{Start: s.Start, End: s.End}
}

// Overlaps reports whether s and o share at least one character.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}
