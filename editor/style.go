package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	StatusLine lipgloss.Style

	// Find bar.
	FindBar       lipgloss.Style
	FindLabel     lipgloss.Style
	FindToggleOn  lipgloss.Style
	FindToggleOff lipgloss.Style
	FindStatus    lipgloss.Style
	FindError     lipgloss.Style
}

func DefaultStyle() Style {
	return StyleWith(lipgloss.NewStyle)
}

// StyleWith builds the default styles from newStyle, typically a
// lipgloss.Renderer's NewStyle.
func StyleWith(newStyle func() lipgloss.Style) Style {
	gutter := newStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: newStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          newStyle(),
		Selection:     newStyle().Background(lipgloss.Color("237")),
		Cursor:        newStyle().Reverse(true),

		StatusLine: newStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),

		FindBar: newStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		FindLabel:     newStyle().Foreground(lipgloss.Color("245")),
		FindToggleOn:  newStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
		FindToggleOff: newStyle().Foreground(lipgloss.Color("245")),
		FindStatus:    newStyle().Foreground(lipgloss.Color("250")),
		FindError:     newStyle().Foreground(lipgloss.Color("196")),
	}
}
