package highlight

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spanfind/search"
)

// Theme maps tags to styles. Tags without an entry render as plain text.
type Theme map[string]lipgloss.Style

// Style returns the style for tag.
func (t Theme) Style(tag string) (lipgloss.Style, bool) {
	st, ok := t[tag]
	return st, ok
}

func DefaultTheme() Theme {
	return ThemeWith(lipgloss.NewStyle)
}

// ThemeWith builds the default palette from newStyle, e.g. a
// lipgloss.Renderer's NewStyle.
func ThemeWith(newStyle func() lipgloss.Style) Theme {
	fg := func(c string) lipgloss.Style { return newStyle().Foreground(lipgloss.Color(c)) }
	return Theme{
		TagKeyword:  fg("#cc7a00"),
		TagBuiltin:  fg("#0099ff"),
		TagString:   fg("#009900"),
		TagNumber:   fg("#009999"),
		TagFuncName: fg("#0033cc"),
		TagComment:  fg("#808080"),
		TagMacro:    fg("#b300b3"),
		TagSelf:     fg("#b300b3"),

		search.TagFound:   newStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#800000")),
		search.TagCurrent: newStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ff0000")),
	}
}
