package highlight

import (
	"fmt"

	"github.com/iw2rmb/spanfind/buffer"
	"github.com/iw2rmb/spanfind/search"
)

// Rule tags either every whole-word occurrence of Words or every match of
// the regex Pattern. Both are case sensitive.
type Rule struct {
	Tag     string
	Words   []string
	Pattern string
}

// Rules highlights a document by running each rule through a
// search.Locator, in order.
type Rules struct {
	rules []Rule
}

// NewRules validates the rule patterns up front.
func NewRules(rules ...Rule) (*Rules, error) {
	for _, r := range rules {
		if r.Pattern == "" {
			continue
		}
		if _, err := buffer.Compile(r.Pattern, buffer.SearchOptions{Regex: true, CaseSensitive: true}); err != nil {
			return nil, fmt.Errorf("highlight rule %q: %w", r.Tag, err)
		}
	}
	return &Rules{rules: append([]Rule(nil), rules...)}, nil
}

func mustRules(rules ...Rule) *Rules {
	r, err := NewRules(rules...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rules) Highlight(b *buffer.Buffer) ([]Token, error) {
	loc := search.NewLocator(b)
	var out []Token
	add := func(opts search.Options, tag string) error {
		spans, err := loc.FindAll(opts, buffer.Start)
		if err != nil {
			return err
		}
		for _, sp := range spans {
			out = append(out, Token{Range: sp.Range(), Tag: tag})
		}
		return nil
	}

	for _, rule := range r.rules {
		for _, w := range rule.Words {
			if err := add(search.Options{Pattern: w, CaseSensitive: true, WholeWord: true}, rule.Tag); err != nil {
				return nil, err
			}
		}
		if rule.Pattern != "" {
			if err := add(search.Options{Pattern: rule.Pattern, Regex: true, CaseSensitive: true}, rule.Tag); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

var pythonKeywords = []string{
	"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del", "elif", "else",
	"except", "False", "finally", "for", "from", "global", "if", "import", "in", "is", "lambda", "None",
	"nonlocal", "not", "or", "pass", "raise", "return", "True", "try", "while", "with", "yield",
}

var pythonBuiltins = []string{
	"abs", "all", "any", "ascii", "bin", "bool", "breakpoint", "bytearray", "bytes", "callable", "chr",
	"classmethod", "compile", "complex", "delattr", "dict", "dir", "divmod", "enumerate", "eval", "exec",
	"filter", "float", "format", "frozenset", "getattr", "globals", "hasattr", "hash", "help", "hex", "id",
	"input", "int", "isinstance", "issubclass", "iter", "len", "list", "locals", "map", "max", "memoryview",
	"min", "next", "object", "oct", "open", "ord", "pow", "print", "property", "range", "repr", "reversed",
	"round", "set", "setattr", "slice", "sorted", "staticmethod", "str", "sum", "super", "tuple", "type",
	"vars", "zip", "__import__", "__name__", "__file__",
	"Exception", "BaseException", "ArithmeticError", "AttributeError", "EOFError", "ImportError",
	"IndexError", "KeyError", "KeyboardInterrupt", "LookupError", "NameError", "NotImplementedError",
	"OSError", "RuntimeError", "StopIteration", "SyntaxError", "TypeError", "ValueError",
	"ZeroDivisionError", "NotImplemented", "Ellipsis",
}

// Python tags keywords, builtins, self, function names, strings and
// comments. Comments are applied last so they win over everything else.
func Python() *Rules {
	return mustRules(
		Rule{Tag: TagKeyword, Words: pythonKeywords},
		Rule{Tag: TagBuiltin, Words: pythonBuiltins},
		Rule{Tag: TagSelf, Words: []string{"self"}},
		Rule{Tag: TagFuncName, Pattern: `(?<=\bdef\s+)\w+(?=\s*\()`},
		Rule{Tag: TagString, Pattern: `(?i:r|u|f|fr|rf|b|br|rb)?(["'])(?:\\.|(?!\1).)*\1`},
		Rule{Tag: TagString, Pattern: `(?s)("""|''').*?\1`},
		Rule{Tag: TagComment, Pattern: `#.*$`},
	)
}

var cKeywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do", "double", "else", "enum",
	"extern", "float", "for", "goto", "if", "int", "long", "register", "return", "short", "signed",
	"sizeof", "static", "struct", "switch", "typedef", "union", "unsigned", "void", "volatile", "while",
	"NULL",
}

// C tags keywords, preprocessor lines, strings, function names and
// comments.
func C() *Rules {
	return mustRules(
		Rule{Tag: TagKeyword, Words: cKeywords},
		Rule{Tag: TagMacro, Pattern: `^[ \t]*#[ \t]*\w+`},
		Rule{Tag: TagString, Pattern: `(["'])(?:\\.|(?!\1).)*\1`},
		Rule{Tag: TagString, Pattern: `(?<=#\s*include\s*)<[^>\n]*>`},
		Rule{Tag: TagFuncName, Pattern: `(?<=\b(?:int|void|char|short|long|float|double|unsigned|signed)[\s*]+)\w+(?=\s*\()`},
		Rule{Tag: TagComment, Pattern: `//.*$`},
		Rule{Tag: TagComment, Pattern: `(?s)/\*.*?\*/`},
	)
}
