package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the rune offsets at which clusters of line start,
// followed by len(line).
func Boundaries(line []rune) []int {
	out := make([]int, 0, len(line)+1)
	out = append(out, 0)
	if len(line) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(line))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// PrevBoundary returns the start of the cluster that ends at or contains
// rune offset col - 1.
func PrevBoundary(line []rune, col int) int {
	prev := 0
	for _, b := range Boundaries(line) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// NextBoundary returns the first cluster boundary strictly after col.
func NextBoundary(line []rune, col int) int {
	for _, b := range Boundaries(line) {
		if b > col {
			return b
		}
	}
	return len(line)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// IsWordRune reports whether r belongs to a word: letters, digits,
// combining marks and the underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// IsWord reports whether cluster is a word character. A cluster is judged by
// its first rune, so a letter followed by combining marks is a word.
func IsWord(cluster string) bool {
	for _, r := range cluster {
		return IsWordRune(r)
	}
	return false
}
