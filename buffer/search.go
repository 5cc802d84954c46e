package buffer

import (
	"time"
	"unicode"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single regex evaluation.
const DefaultMatchTimeout = 2 * time.Second

// SearchOptions select the matching engine for a Pattern.
type SearchOptions struct {
	Regex         bool
	CaseSensitive bool
	// MatchTimeout bounds one regex evaluation; zero means DefaultMatchTimeout.
	MatchTimeout time.Duration
}

// Pattern is a compiled search pattern. A zero-length literal never matches.
type Pattern struct {
	text []rune
	opt  SearchOptions
	re   *regexp2.Regexp
}

// Compile prepares pattern for Search. Regex patterns use .NET-style syntax
// with ^ and $ anchored at line boundaries.
func Compile(pattern string, opt SearchOptions) (*Pattern, error) {
	p := &Pattern{text: []rune(pattern), opt: opt}
	if !opt.Regex {
		return p, nil
	}

	flags := regexp2.RegexOptions(regexp2.Multiline)
	if !opt.CaseSensitive {
		flags |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, flags)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = opt.MatchTimeout
	if re.MatchTimeout <= 0 {
		re.MatchTimeout = DefaultMatchTimeout
	}
	p.re = re
	return p, nil
}

func (p *Pattern) String() string { return string(p.text) }

// Options returns the options p was compiled with.
func (p *Pattern) Options() SearchOptions { return p.opt }

// Search returns the first match of p at or after start and its length in
// characters (line breaks count as one). ok is false when nothing matches.
// Zero-length regex matches are reported as they are; callers decide how to
// advance past them.
func (b *Buffer) Search(p *Pattern, start Pos) (at Pos, length int, ok bool, err error) {
	if p == nil {
		return Pos{}, 0, false, nil
	}
	text := b.flatRunes()
	from := b.OffsetOf(start)

	var idx, n int
	if p.re != nil {
		idx, n, ok, err = p.findRegex(text, from)
	} else {
		idx, n, ok = p.findLiteral(text, from)
	}
	if !ok || err != nil {
		return Pos{}, 0, false, err
	}
	return b.PosAt(idx), n, true, nil
}

func (p *Pattern) findRegex(text []rune, from int) (int, int, bool, error) {
	m, err := p.re.FindRunesMatchStartingAt(text, from)
	if err != nil {
		return 0, 0, false, err
	}
	if m == nil {
		return 0, 0, false, nil
	}
	return m.Index, m.Length, true, nil
}

func (p *Pattern) findLiteral(text []rune, from int) (int, int, bool) {
	n := len(p.text)
	if n == 0 {
		return 0, 0, false
	}
	for i := from; i+n <= len(text); i++ {
		if p.literalAt(text, i) {
			return i, n, true
		}
	}
	return 0, 0, false
}

func (p *Pattern) literalAt(text []rune, i int) bool {
	for j, want := range p.text {
		got := text[i+j]
		if got == want {
			continue
		}
		if p.opt.CaseSensitive || !equalFold(got, want) {
			return false
		}
	}
	return true
}

// equalFold compares runes under simple Unicode case folding.
func equalFold(a, b rune) bool {
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
