package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/spanfind/buffer"
	"github.com/iw2rmb/spanfind/search"
)

type findField int

const (
	fieldFind findField = iota
	fieldReplace
)

const findInputWidth = 24

// findBar is the find/replace UI state. It owns the search session for as
// long as it is open.
type findBar struct {
	session *search.Session

	find    textinput.Model
	replace textinput.Model
	field   findField

	replaceMode bool
	// all is set once the user asked for every match to be highlighted.
	all  bool
	opts search.Options
	err  error
}

func newFindBar(b *buffer.Buffer) *findBar {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder
		in.Width = findInputWidth
		return in
	}
	return &findBar{
		session: search.NewSession(b),
		find:    newInput("find"),
		replace: newInput("replace"),
	}
}

func (f *findBar) options() search.Options {
	o := f.opts
	o.Pattern = f.find.Value()
	return o
}

// run searches with the current input and toggles. An empty pattern ends
// the search so no stale highlights remain.
func (f *findBar) run() {
	opts := f.options()
	if opts.Pattern == "" {
		f.session.Close()
		f.err = nil
		return
	}
	if f.all {
		f.err = f.session.FindAll(opts)
	} else {
		f.err = f.session.Find(opts)
	}
}

// refresh updates matches after the buffer changed underneath the session.
func (f *findBar) refresh() {
	if err := f.session.Refresh(); err != nil {
		f.err = err
	}
}

func (f *findBar) focus(field findField) tea.Cmd {
	if field == fieldReplace && !f.replaceMode {
		field = fieldFind
	}
	f.field = field
	if field == fieldReplace {
		f.find.Blur()
		return f.replace.Focus()
	}
	f.replace.Blur()
	return f.find.Focus()
}

func (f *findBar) status() string {
	if f.err != nil {
		return "Invalid pattern"
	}
	return f.session.Status()
}

func (f *findBar) view(st Style) string {
	toggle := func(on bool, label string) string {
		if on {
			return st.FindToggleOn.Render(label)
		}
		return st.FindToggleOff.Render(label)
	}

	var sb strings.Builder
	sb.WriteString(st.FindLabel.Render("Find    "))
	sb.WriteString(f.find.View())
	sb.WriteString(" ")
	sb.WriteString(toggle(f.opts.CaseSensitive, "Aa"))
	sb.WriteString(" ")
	sb.WriteString(toggle(f.opts.WholeWord, "W"))
	sb.WriteString(" ")
	sb.WriteString(toggle(f.opts.Regex, ".*"))
	if s := f.status(); s != "" {
		sb.WriteString(" ")
		if f.err != nil {
			sb.WriteString(st.FindError.Render(s))
		} else {
			sb.WriteString(st.FindStatus.Render(s))
		}
	}
	if f.replaceMode {
		sb.WriteString("\n")
		sb.WriteString(st.FindLabel.Render("Replace "))
		sb.WriteString(f.replace.View())
	}
	return st.FindBar.Render(sb.String())
}

// FindOpen reports whether the find bar is showing.
func (m Model) FindOpen() bool { return m.find != nil }

// FindSession returns the active search session, or nil when the find bar
// is closed.
func (m Model) FindSession() *search.Session {
	if m.find == nil {
		return nil
	}
	return m.find.session
}

// OpenFind shows the find bar, with the replace field when replace is set.
// A single-line selection seeds the search pattern.
func (m Model) OpenFind(replace bool) (Model, tea.Cmd) {
	cmd := m.openFind(replace)
	m.rebuildContent()
	return m, cmd
}

// CloseFind hides the find bar and ends its session.
func (m Model) CloseFind() Model {
	m.closeFind()
	m.rebuildContent()
	return m
}

func (m *Model) openFind(replace bool) tea.Cmd {
	if m.find == nil {
		m.find = newFindBar(m.buf)
		if r, ok := m.buf.Selection(); ok && r.Start.Row == r.End.Row {
			m.find.find.SetValue(m.buf.Get(r.Start, r.End))
			m.find.run()
		}
	}
	if replace && !m.cfg.ReadOnly {
		m.find.replaceMode = true
		return m.find.focus(fieldReplace)
	}
	return m.find.focus(fieldFind)
}

func (m *Model) closeFind() {
	if m.find == nil {
		return
	}
	m.find.session.Close()
	m.find = nil
}

// jumpToMatch moves the cursor to the current match so it scrolls into view.
func (m *Model) jumpToMatch() {
	if cur, ok := m.find.session.Current(); ok {
		m.buf.ClearSelection()
		m.buf.SetCursor(cur.Start)
	}
}

func (m Model) updateFindKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	f := m.find
	km := m.cfg.KeyMap.Find
	canReplace := f.replaceMode && !m.cfg.ReadOnly

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, km.Close):
		m.closeFind()
	case key.Matches(msg, km.Open):
		cmd = f.focus(fieldFind)
	case key.Matches(msg, km.OpenReplace):
		cmd = m.openFind(true)
	case key.Matches(msg, km.SwitchField):
		if f.field == fieldFind {
			cmd = f.focus(fieldReplace)
		} else {
			cmd = f.focus(fieldFind)
		}

	case key.Matches(msg, km.ToggleCase):
		f.opts.CaseSensitive = !f.opts.CaseSensitive
		f.run()
		m.jumpToMatch()
	case key.Matches(msg, km.ToggleWholeWord):
		f.opts.WholeWord = !f.opts.WholeWord
		f.run()
		m.jumpToMatch()
	case key.Matches(msg, km.ToggleRegex):
		f.opts.Regex = !f.opts.Regex
		f.run()
		m.jumpToMatch()

	case key.Matches(msg, km.All):
		f.all = true
		f.run()
		m.jumpToMatch()
	case key.Matches(msg, km.ReplaceAll):
		if canReplace {
			if f.session.State() == search.StateIdle {
				f.run()
			}
			_, f.err = f.session.ReplaceAll(f.replace.Value())
			m.jumpToMatch()
		}
	case key.Matches(msg, km.Next):
		switch {
		case f.session.State() == search.StateIdle:
			f.run()
		case f.field == fieldReplace && canReplace:
			f.err = f.session.Replace(f.replace.Value())
		default:
			f.session.Next()
		}
		m.jumpToMatch()
	case key.Matches(msg, km.Prev):
		if f.session.State() == search.StateIdle {
			f.run()
		} else {
			f.session.Prev()
		}
		m.jumpToMatch()

	default:
		if f.field == fieldReplace {
			f.replace, cmd = f.replace.Update(msg)
			break
		}
		before := f.find.Value()
		f.find, cmd = f.find.Update(msg)
		if f.find.Value() != before {
			f.run()
			m.jumpToMatch()
		}
	}

	m.rebuildContent()
	return m, cmd
}

func (m Model) overlayFindBar(base string) string {
	return overlay.Composite(m.find.view(m.cfg.Style), base, overlay.Right, overlay.Top, 0, 0)
}
