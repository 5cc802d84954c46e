package search

import (
	"errors"
	"testing"

	"github.com/iw2rmb/spanfind/buffer"
)

func pos(row, col int) buffer.Pos { return buffer.Pos{Row: row, Col: col} }

func span(row, start, end int) Span {
	return Span{Start: pos(row, start), End: pos(row, end)}
}

// plainText hides the optional Replace and Group capabilities of a buffer.
type plainText struct{ b *buffer.Buffer }

func (t plainText) Get(start, end buffer.Pos) string { return t.b.Get(start, end) }
func (t plainText) Search(p *buffer.Pattern, start buffer.Pos) (buffer.Pos, int, bool, error) {
	return t.b.Search(p, start)
}
func (t plainText) Insert(p buffer.Pos, text string) buffer.Pos { return t.b.Insert(p, text) }
func (t plainText) Delete(start, end buffer.Pos)                { t.b.Delete(start, end) }
func (t plainText) Index(p buffer.Pos, chars int) buffer.Pos    { return t.b.Index(p, chars) }

func findAll(t *testing.T, text string, opts Options) []Span {
	t.Helper()
	got, err := NewLocator(buffer.New(text, buffer.Options{})).FindAll(opts, buffer.Start)
	if err != nil {
		t.Fatalf("FindAll(%q): %v", opts.Pattern, err)
	}
	return got
}

func assertSpans(t *testing.T, got, want []Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("spans=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spans=%v, want %v", got, want)
		}
	}
}

func TestFindAll_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		text string
		opts Options
		want []Span
	}{
		{
			name: "substring inside words",
			text: "the cat sat on the mat",
			opts: Options{Pattern: "at", CaseSensitive: true},
			want: []Span{span(1, 5, 7), span(1, 9, 11), span(1, 20, 22)},
		},
		{
			name: "whole word excludes longer words",
			text: "cat category cats",
			opts: Options{Pattern: "cat", CaseSensitive: true, WholeWord: true},
			want: []Span{span(1, 0, 3)},
		},
		{
			name: "case insensitive",
			text: "Hello World",
			opts: Options{Pattern: "hello"},
			want: []Span{span(1, 0, 5)},
		},
		{
			name: "case sensitive miss",
			text: "Hello World",
			opts: Options{Pattern: "hello", CaseSensitive: true},
			want: nil,
		},
		{
			name: "empty pattern",
			text: "anything at all",
			opts: Options{Pattern: ""},
			want: nil,
		},
		{
			name: "not found",
			text: "abc",
			opts: Options{Pattern: "zzz"},
			want: nil,
		},
		{
			name: "non-overlapping literal",
			text: "aaaa",
			opts: Options{Pattern: "aa"},
			want: []Span{span(1, 0, 2), span(1, 2, 4)},
		},
		{
			name: "multi-line results in document order",
			text: "foo\nbar foo\n\nfoo",
			opts: Options{Pattern: "foo"},
			want: []Span{span(1, 0, 3), span(2, 4, 7), span(4, 0, 3)},
		},
		{
			name: "pattern spanning a line break",
			text: "ab\ncd",
			opts: Options{Pattern: "b\nc"},
			want: []Span{{Start: pos(1, 1), End: pos(2, 1)}},
		},
		{
			name: "regex",
			text: "x1 y22 z333",
			opts: Options{Pattern: `\d+`, Regex: true},
			want: []Span{span(1, 1, 2), span(1, 4, 6), span(1, 8, 11)},
		},
		{
			name: "regex zero-width matches are skipped",
			text: "baab",
			opts: Options{Pattern: `a*`, Regex: true},
			want: []Span{span(1, 1, 3)},
		},
		{
			name: "regex only zero-width",
			text: "abc",
			opts: Options{Pattern: `^`, Regex: true},
			want: nil,
		},
		{
			name: "regex with whole word is filtered afterwards",
			text: "cat concat cats cat_ cat.",
			opts: Options{Pattern: `c\w?t`, Regex: true, WholeWord: true},
			want: []Span{span(1, 0, 3), span(1, 21, 24)},
		},
		{
			name: "whole word at buffer boundaries",
			text: "a",
			opts: Options{Pattern: "a", WholeWord: true},
			want: []Span{span(1, 0, 1)},
		},
		{
			name: "whole word with punctuation and newline neighbours",
			text: "(go)\ngo-go\ngopher",
			opts: Options{Pattern: "go", WholeWord: true},
			want: []Span{span(1, 1, 3), span(2, 0, 2), span(2, 3, 5)},
		},
		{
			name: "whole word finds a later match after a rejected candidate",
			text: "cats cat",
			opts: Options{Pattern: "cat", WholeWord: true},
			want: []Span{span(1, 5, 8)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertSpans(t, findAll(t, tc.text, tc.opts), tc.want)
		})
	}
}

func TestFindAll_IsIdempotent(t *testing.T) {
	b := buffer.New("one two one\nthree one", buffer.Options{})
	l := NewLocator(b)
	opts := Options{Pattern: "one"}

	first, err := l.FindAll(opts, buffer.Start)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	second, err := l.FindAll(opts, buffer.Start)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	assertSpans(t, second, first)
}

func TestFindAll_FromStartPosition(t *testing.T) {
	b := buffer.New("ab ab ab", buffer.Options{})
	got, err := NewLocator(b).FindAll(Options{Pattern: "ab"}, pos(1, 1))
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	assertSpans(t, got, []Span{span(1, 3, 5), span(1, 6, 8)})
}

func TestFindFirst(t *testing.T) {
	b := buffer.New("alpha beta\ngamma beta", buffer.Options{})
	l := NewLocator(b)

	sp, ok, err := l.FindFirst(Options{Pattern: "beta"}, pos(1, 7))
	if err != nil || !ok {
		t.Fatalf("FindFirst: ok=%v err=%v", ok, err)
	}
	if want := span(2, 6, 10); sp != want {
		t.Fatalf("span=%v, want %v", sp, want)
	}

	if _, ok, _ := l.FindFirst(Options{Pattern: "beta"}, buffer.End); ok {
		t.Fatalf("expected no match from the end sentinel")
	}
}

func TestFindFirst_InvalidPattern(t *testing.T) {
	l := NewLocator(buffer.New("abc", buffer.Options{}))

	_, _, err := l.FindFirst(Options{Pattern: "(", Regex: true}, buffer.Start)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
	var pe *PatternError
	if !errors.As(err, &pe) || pe.Pattern != "(" {
		t.Fatalf("expected *PatternError for %q, got %v", "(", err)
	}

	if _, err := l.FindAll(Options{Pattern: "(", Regex: true}, buffer.Start); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("FindAll err=%v, want ErrInvalidPattern", err)
	}
	if _, err := l.ReplaceAll(Options{Pattern: "(", Regex: true}, "x"); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("ReplaceAll err=%v, want ErrInvalidPattern", err)
	}
}

func TestIsWholeWord(t *testing.T) {
	b := buffer.New("foo_bar baz\nqux", buffer.Options{})
	l := NewLocator(b)

	cases := []struct {
		sp   Span
		want bool
	}{
		{sp: span(1, 0, 3), want: false},  // followed by '_'
		{sp: span(1, 0, 7), want: true},   // buffer start, then space
		{sp: span(1, 8, 11), want: true},  // space, then newline
		{sp: span(2, 0, 3), want: true},   // newline, then buffer end
		{sp: span(1, 9, 11), want: false}, // preceded by 'b'
	}
	for _, tc := range cases {
		if got := l.IsWholeWord(tc.sp); got != tc.want {
			t.Fatalf("IsWholeWord(%v)=%v, want %v", tc.sp, got, tc.want)
		}
	}
}

func TestReplaceOne_ReturnsCursorAfterReplacement(t *testing.T) {
	for name, text := range map[string]func(*buffer.Buffer) Text{
		"buffer": func(b *buffer.Buffer) Text { return b },
		"plain":  func(b *buffer.Buffer) Text { return plainText{b} },
	} {
		t.Run(name, func(t *testing.T) {
			b := buffer.New("a cat here", buffer.Options{})
			l := NewLocator(text(b))

			next := l.ReplaceOne(span(1, 2, 5), "dog\nfish")
			if got, want := b.Text(), "a dog\nfish here"; got != want {
				t.Fatalf("text=%q, want %q", got, want)
			}
			if want := pos(2, 4); next != want {
				t.Fatalf("next=%v, want %v", next, want)
			}
		})
	}
}

func TestReplaceOne_ResearchSkipsInsertedText(t *testing.T) {
	b := buffer.New("a b a", buffer.Options{})
	l := NewLocator(b)
	opts := Options{Pattern: "a"}

	first, ok, _ := l.FindFirst(opts, buffer.Start)
	if !ok {
		t.Fatalf("expected a match")
	}
	next := l.ReplaceOne(first, "aaa")

	rest, err := l.FindAll(opts, next)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	for _, sp := range rest {
		if sp.Start.Before(next) {
			t.Fatalf("match %v lies inside the inserted text ending at %v", sp, next)
		}
	}
	assertSpans(t, rest, []Span{span(1, 6, 7)})
}

func TestReplaceAll(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		opts        Options
		replacement string
		want        string
		wantCount   int
	}{
		{
			name:        "replacement contains the pattern",
			text:        "aaa",
			opts:        Options{Pattern: "a"},
			replacement: "aa",
			want:        "aaaaaa",
			wantCount:   3,
		},
		{
			name:        "deleting matches",
			text:        "a-b-c",
			opts:        Options{Pattern: "-"},
			replacement: "",
			want:        "abc",
			wantCount:   2,
		},
		{
			name:        "whole word only",
			text:        "cat category cats cat",
			opts:        Options{Pattern: "cat", WholeWord: true, CaseSensitive: true},
			replacement: "dog",
			want:        "dog category cats dog",
			wantCount:   2,
		},
		{
			name:        "regex across lines",
			text:        "x = 1\ny = 22",
			opts:        Options{Pattern: `\d+`, Regex: true},
			replacement: "N",
			want:        "x = N\ny = N",
			wantCount:   2,
		},
		{
			name:        "shrinking replacement creating new adjacency",
			text:        "aabb",
			opts:        Options{Pattern: "ab"},
			replacement: "",
			want:        "ab",
			wantCount:   1,
		},
		{
			name:        "empty pattern",
			text:        "abc",
			opts:        Options{},
			replacement: "x",
			want:        "abc",
			wantCount:   0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buffer.New(tc.text, buffer.Options{})
			n, err := NewLocator(b).ReplaceAll(tc.opts, tc.replacement)
			if err != nil {
				t.Fatalf("ReplaceAll: %v", err)
			}
			if n != tc.wantCount {
				t.Fatalf("count=%d, want %d", n, tc.wantCount)
			}
			if got := b.Text(); got != tc.want {
				t.Fatalf("text=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestReplaceAll_IsOneUndoStep(t *testing.T) {
	b := buffer.New("a a a", buffer.Options{})
	if _, err := NewLocator(b).ReplaceAll(Options{Pattern: "a"}, "b"); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if got, want := b.Text(), "b b b"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	b.Undo()
	if got, want := b.Text(), "a a a"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
}

func TestReplaceAll_WithoutOptionalCapabilities(t *testing.T) {
	b := buffer.New("aaa", buffer.Options{})
	n, err := NewLocator(plainText{b}).ReplaceAll(Options{Pattern: "a"}, "aa")
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if n != 3 || b.Text() != "aaaaaa" {
		t.Fatalf("ReplaceAll=(%d,%q), want (3,%q)", n, b.Text(), "aaaaaa")
	}
}

func FuzzFindAll_OrderedAndNonOverlapping(f *testing.F) {
	f.Add("the cat sat on the mat", "at", false, false)
	f.Add("aaaa", "a*", true, false)
	f.Add("cat category cats", "cat", false, true)
	f.Add("x\ny\n", "^", true, true)

	f.Fuzz(func(t *testing.T, text, pattern string, regex, wholeWord bool) {
		b := buffer.New(text, buffer.Options{})
		opts := Options{Pattern: pattern, Regex: regex, WholeWord: wholeWord}
		spans, err := NewLocator(b).FindAll(opts, buffer.Start)
		if err != nil {
			return
		}
		for i, sp := range spans {
			if !sp.Start.Before(sp.End) {
				t.Fatalf("empty or inverted span %v", sp)
			}
			if i > 0 && sp.Start.Before(spans[i-1].End) {
				t.Fatalf("span %v overlaps or precedes %v", sp, spans[i-1])
			}
		}
	})
}
