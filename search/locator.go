// Package search locates pattern occurrences in a mutable line/column text
// and replaces them without ever reusing positions made stale by an edit.
package search

import (
	"time"

	"github.com/iw2rmb/spanfind/buffer"
	"github.com/iw2rmb/spanfind/internal/grapheme"
)

// Text is the mutable document a Locator searches and edits.
// *buffer.Buffer implements it.
type Text interface {
	// Get returns the text in [start, end).
	Get(start, end buffer.Pos) string
	// Search returns the first match of p at or after start and its length
	// in characters.
	Search(p *buffer.Pattern, start buffer.Pos) (buffer.Pos, int, bool, error)
	// Insert inserts text at p and returns the position just after it.
	Insert(p buffer.Pos, text string) buffer.Pos
	Delete(start, end buffer.Pos)
	// Index resolves p (including buffer.End) into bounds and moves it by
	// chars characters.
	Index(p buffer.Pos, chars int) buffer.Pos
}

// replacer is implemented by texts that can swap a range atomically.
type replacer interface {
	Replace(r buffer.Range, text string) buffer.Pos
}

// grouper is implemented by texts that can record several edits as one
// undo step.
type grouper interface {
	Group(fn func())
}

// Locator finds and replaces pattern occurrences in a Text.
type Locator struct {
	text Text

	// Timeout bounds one regex evaluation. Zero means
	// buffer.DefaultMatchTimeout.
	Timeout time.Duration
}

func NewLocator(t Text) *Locator {
	return &Locator{text: t}
}

// compile returns a nil pattern for an empty search string.
func (l *Locator) compile(opts Options) (*buffer.Pattern, error) {
	if opts.Pattern == "" {
		return nil, nil
	}
	so := opts.searchOptions()
	so.MatchTimeout = l.Timeout
	p, err := buffer.Compile(opts.Pattern, so)
	if err != nil {
		return nil, &PatternError{Pattern: opts.Pattern, Err: err}
	}
	return p, nil
}

// FindFirst returns the first match at or after from.
func (l *Locator) FindFirst(opts Options, from buffer.Pos) (Span, bool, error) {
	p, err := l.compile(opts)
	if p == nil {
		return Span{}, false, err
	}
	return l.findFirst(p, opts.WholeWord, from)
}

// FindAll returns every match at or after from, in document order and
// without overlaps. Each search resumes at the end of the previous match.
func (l *Locator) FindAll(opts Options, from buffer.Pos) ([]Span, error) {
	p, err := l.compile(opts)
	if p == nil {
		return nil, err
	}
	return l.findAll(p, opts.WholeWord, from)
}

func (l *Locator) findAll(p *buffer.Pattern, wholeWord bool, from buffer.Pos) ([]Span, error) {
	var out []Span
	for {
		sp, ok, err := l.findFirst(p, wholeWord, from)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, sp)
		from = sp.End
	}
}

func (l *Locator) findFirst(p *buffer.Pattern, wholeWord bool, from buffer.Pos) (Span, bool, error) {
	from = l.text.Index(from, 0)
	for {
		at, n, ok, err := l.text.Search(p, from)
		if err != nil || !ok {
			return Span{}, false, err
		}
		if n == 0 {
			// Zero-width matches are never reported.
			next := l.text.Index(at, 1)
			if next == at {
				return Span{}, false, nil
			}
			from = next
			continue
		}

		sp := Span{Start: at, End: l.text.Index(at, n)}
		if wholeWord && !l.IsWholeWord(sp) {
			from = l.text.Index(at, 1)
			continue
		}
		return sp, true, nil
	}
}

// IsWholeWord reports whether the characters immediately before and after
// sp are absent or not word characters. Buffer boundaries count as non-word.
func (l *Locator) IsWholeWord(sp Span) bool {
	if before := l.text.Index(sp.Start, -1); before != sp.Start {
		if grapheme.IsWord(l.text.Get(before, sp.Start)) {
			return false
		}
	}
	if after := l.text.Index(sp.End, 1); after != sp.End {
		if grapheme.IsWord(l.text.Get(sp.End, after)) {
			return false
		}
	}
	return true
}

// ReplaceOne swaps the text of sp for replacement and returns the position
// just after the inserted text. Spans computed before the call that lie at or
// after sp.Start are stale once it returns.
func (l *Locator) ReplaceOne(sp Span, replacement string) buffer.Pos {
	if r, ok := l.text.(replacer); ok {
		return r.Replace(sp.Range(), replacement)
	}
	l.text.Delete(sp.Start, sp.End)
	return l.text.Insert(sp.Start, replacement)
}

// ReplaceAll replaces every match of opts with replacement and reports how
// many were replaced. Scanning resumes after each inserted replacement, so
// replacement text is never searched again.
func (l *Locator) ReplaceAll(opts Options, replacement string) (int, error) {
	p, err := l.compile(opts)
	if p == nil {
		return 0, err
	}

	count := 0
	run := func() {
		from := buffer.Start
		for {
			sp, ok, ferr := l.findFirst(p, opts.WholeWord, from)
			if ferr != nil {
				err = ferr
				return
			}
			if !ok {
				return
			}
			from = l.ReplaceOne(sp, replacement)
			count++
		}
	}

	if g, ok := l.text.(grouper); ok {
		g.Group(run)
	} else {
		run()
	}
	return count, err
}
