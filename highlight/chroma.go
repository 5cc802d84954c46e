package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/iw2rmb/spanfind/buffer"
)

// Chroma highlights with a chroma lexer, mapping token types onto the
// shared tags. Types without a tag are left unstyled.
type Chroma struct {
	lexer chroma.Lexer
}

func NewChroma(lexer chroma.Lexer) *Chroma {
	return &Chroma{lexer: chroma.Coalesce(lexer)}
}

func (c *Chroma) Highlight(b *buffer.Buffer) ([]Token, error) {
	it, err := c.lexer.Tokenise(nil, b.Text())
	if err != nil {
		return nil, err
	}

	last := b.LastPos()
	var out []Token
	p := buffer.Start
	for _, tok := range it.Tokens() {
		if last.Before(p) {
			break
		}
		next := advance(p, tok.Value)
		if tag := tagFor(tok.Type); tag != "" {
			// Line comments usually carry their line break.
			end := advance(p, strings.TrimRight(tok.Value, "\n"))
			if last.Before(end) {
				end = last
			}
			if end != p {
				out = append(out, Token{Range: buffer.Range{Start: p, End: end}, Tag: tag})
			}
		}
		p = next
	}
	return out, nil
}

// advance moves p over s, one column per rune.
func advance(p buffer.Pos, s string) buffer.Pos {
	for _, r := range s {
		if r == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}

func tagFor(t chroma.TokenType) string {
	switch {
	case t == chroma.NameBuiltinPseudo:
		return TagSelf
	case t == chroma.NameBuiltin:
		return TagBuiltin
	case t == chroma.NameFunction:
		return TagFuncName
	case t.InCategory(chroma.Keyword):
		return TagKeyword
	case t.InSubCategory(chroma.CommentPreproc):
		return TagMacro
	case t.InCategory(chroma.Comment):
		return TagComment
	case t.InSubCategory(chroma.LiteralString):
		return TagString
	case t.InSubCategory(chroma.LiteralNumber):
		return TagNumber
	default:
		return ""
	}
}
