// Package highlight produces tagged ranges for syntax colouring. Tags are
// plain names; a Theme maps them to styles at render time.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/spanfind/buffer"
)

// Tags shared by every highlighter.
const (
	TagKeyword  = "keywords"
	TagBuiltin  = "builtins"
	TagString   = "strings"
	TagNumber   = "numbers"
	TagFuncName = "func_names"
	TagComment  = "comments"
	TagMacro    = "macros"
	TagSelf     = "self"
)

// Token tags a range of the document. Ranges may span lines.
type Token struct {
	Range buffer.Range
	Tag   string
}

// Highlighter tags a whole document. When tokens overlap, later tokens
// are drawn over earlier ones.
type Highlighter interface {
	Highlight(b *buffer.Buffer) ([]Token, error)
}

// ForFile picks a highlighter from the file name, or nil for plain text.
func ForFile(name string) Highlighter {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".py", ".pyw":
		return Python()
	case ".c", ".h":
		return C()
	}
	lexer := lexers.Match(filepath.Base(name))
	if lexer == nil {
		return nil
	}
	return NewChroma(lexer)
}
