package search

import (
	"fmt"

	"github.com/iw2rmb/spanfind/buffer"
)

// Document is a Text that also reports how it changed. *buffer.Buffer
// implements it.
type Document interface {
	Text
	TextVersion() uint64
	LastChange() (buffer.Change, bool)
}

// State is the phase of a find/replace session.
type State uint8

const (
	StateIdle State = iota
	StateSearching
	StateHasResults
	StateNoResults
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateHasResults:
		return "has-results"
	case StateNoResults:
		return "no-results"
	default:
		return "unknown"
	}
}

// Highlight tags used by Session.Highlights.
const (
	TagFound   = "found"
	TagCurrent = "current"
)

// Highlight marks a span with a display tag.
type Highlight struct {
	Span Span
	Tag  string
}

// Session is one find/replace interaction over a document. The host creates
// it when the find UI opens and calls Close when the UI goes away.
//
// Navigation wraps: Next past the last match returns the first one and Prev
// before the first returns the last.
type Session struct {
	doc Document
	loc *Locator

	state        State
	opts         Options
	highlightAll bool

	spans   []Span
	cur     int
	version uint64
}

func NewSession(doc Document) *Session {
	return &Session{doc: doc, loc: NewLocator(doc)}
}

// Locator exposes the session's locator, e.g. to tune its Timeout.
func (s *Session) Locator() *Locator { return s.loc }

func (s *Session) State() State { return s.state }

func (s *Session) Options() Options { return s.opts }

// Find searches the whole document and highlights the first match only.
func (s *Session) Find(opts Options) error {
	return s.find(opts, false)
}

// FindAll searches the whole document and highlights every match.
func (s *Session) FindAll(opts Options) error {
	return s.find(opts, true)
}

func (s *Session) find(opts Options, highlightAll bool) error {
	s.opts = opts
	s.highlightAll = highlightAll
	s.state = StateSearching
	s.cur = 0

	spans, err := s.loc.FindAll(opts, buffer.Start)
	s.setSpans(spans)
	return err
}

func (s *Session) setSpans(spans []Span) {
	s.spans = spans
	s.version = s.doc.TextVersion()
	if len(spans) == 0 {
		s.state = StateNoResults
		s.cur = 0
		return
	}
	s.state = StateHasResults
	if s.cur >= len(spans) {
		s.cur = 0
	}
}

// Count returns the number of current matches.
func (s *Session) Count() int { return len(s.spans) }

// Index returns the 1-based ordinal of the current match, or 0 when there
// are no matches.
func (s *Session) Index() int {
	if len(s.spans) == 0 {
		return 0
	}
	return s.cur + 1
}

// Matches returns a copy of the current match list.
func (s *Session) Matches() []Span {
	return append([]Span(nil), s.spans...)
}

// Current returns the selected match.
func (s *Session) Current() (Span, bool) {
	if len(s.spans) == 0 {
		return Span{}, false
	}
	return s.spans[s.cur], true
}

// Next selects the following match, wrapping to the first.
func (s *Session) Next() (Span, bool) {
	return s.step(1)
}

// Prev selects the preceding match, wrapping to the last.
func (s *Session) Prev() (Span, bool) {
	return s.step(-1)
}

func (s *Session) step(delta int) (Span, bool) {
	n := len(s.spans)
	if n == 0 {
		return Span{}, false
	}
	s.cur = ((s.cur+delta)%n + n) % n
	return s.spans[s.cur], true
}

// Status renders the "n/m" counter, or "None" after a search without
// results. An idle session has an empty status.
func (s *Session) Status() string {
	switch s.state {
	case StateHasResults:
		return fmt.Sprintf("%d/%d", s.Index(), s.Count())
	case StateNoResults:
		return "None"
	default:
		return ""
	}
}

// Highlights returns the spans to paint: every match tagged TagFound after
// FindAll, plus the current match tagged TagCurrent.
func (s *Session) Highlights() []Highlight {
	cur, ok := s.Current()
	if !ok {
		return nil
	}
	var out []Highlight
	if s.highlightAll {
		out = make([]Highlight, 0, len(s.spans)+1)
		for i, sp := range s.spans {
			if i == s.cur {
				continue
			}
			out = append(out, Highlight{Span: sp, Tag: TagFound})
		}
	}
	return append(out, Highlight{Span: cur, Tag: TagCurrent})
}

// Replace swaps the current match for replacement, then re-searches from
// the end of the inserted text. The current match becomes the first match
// at or after that point, wrapping to the first match of the document.
func (s *Session) Replace(replacement string) error {
	if err := s.Refresh(); err != nil {
		return err
	}
	cur, ok := s.Current()
	if !ok {
		return nil
	}

	next := s.loc.ReplaceOne(cur, replacement)
	if err := s.refreshFrom(cur.Start); err != nil {
		return err
	}

	s.cur = 0
	for i, sp := range s.spans {
		if !sp.Start.Before(next) {
			s.cur = i
			break
		}
	}
	return nil
}

// ReplaceAll replaces every match and recomputes the match list.
func (s *Session) ReplaceAll(replacement string) (int, error) {
	if s.state == StateIdle {
		return 0, nil
	}
	n, err := s.loc.ReplaceAll(s.opts, replacement)
	if err != nil {
		return n, err
	}
	s.cur = 0
	spans, err := s.loc.FindAll(s.opts, buffer.Start)
	s.setSpans(spans)
	return n, err
}

// Refresh brings the match list up to date with edits made to the document
// since the last search. Matches that end strictly before the first edited
// position are kept; everything from there on is searched again.
func (s *Session) Refresh() error {
	if s.state != StateHasResults && s.state != StateNoResults {
		return nil
	}
	if s.doc.TextVersion() == s.version {
		return nil
	}

	ch, ok := s.doc.LastChange()
	if !ok || ch.TextVersionBefore != s.version || ch.TextVersionAfter != s.doc.TextVersion() {
		return s.refreshFrom(buffer.Start)
	}
	first, ok := ch.FirstAffected()
	if !ok {
		first = buffer.Start
	}
	return s.refreshFrom(first)
}

// refreshFrom re-searches the document from the last match that ends
// strictly before changed.
func (s *Session) refreshFrom(changed buffer.Pos) error {
	kept := 0
	for kept < len(s.spans) && s.spans[kept].End.Before(changed) {
		kept++
	}
	from := buffer.Start
	if kept > 0 {
		from = s.spans[kept-1].End
	}

	tail, err := s.loc.FindAll(s.opts, from)
	if err != nil {
		return err
	}
	spans := append(s.spans[:kept:kept], tail...)
	s.setSpans(spans)
	return nil
}

// Close ends the session: matches and highlights are dropped and the
// session returns to Idle.
func (s *Session) Close() {
	s.state = StateIdle
	s.spans = nil
	s.cur = 0
	s.highlightAll = false
}
