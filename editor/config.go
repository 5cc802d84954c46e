package editor

import "github.com/iw2rmb/spanfind/highlight"

// Config configures the editor Model. The zero value is usable.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums   bool
	ShowStatusLine bool
	Style          Style
	// TabWidth is the tab stop distance in cells; zero means 4.
	TabWidth int

	// Highlighter tags the document for syntax colouring; nil renders plain
	// text. Theme maps its tags, and the search tags, to styles.
	Highlighter highlight.Highlighter
	Theme       highlight.Theme

	KeyMap       KeyMap
	ScrollPolicy ScrollPolicy
	ReadOnly     bool

	// Clipboard backs copy, cut and paste; nil disables them.
	Clipboard Clipboard

	// OnChange is called after every update that changed the buffer version.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
}

const defaultTabWidth = 4

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return defaultTabWidth
	}
	return c.TabWidth
}
