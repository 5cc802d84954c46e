package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spanfind/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	if !m.focused {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.mouseInBounds(msg.X, msg.Y) && !m.overFindBar(msg.X, msg.Y) {
			m.pressAt(m.ScreenToDoc(msg.X, msg.Y), msg.Shift)
		}
	case tea.MouseActionMotion:
		if m.mouseDragging {
			p := m.ScreenToDoc(m.clampMouseToBounds(msg.X, msg.Y))
			m.buf.SetCursor(p)
			m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
		}
	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, cmd
}

// pressAt places the cursor at p. With extend set the selection grows from
// its current start (or the cursor) to p.
func (m *Model) pressAt(p buffer.Pos, extend bool) {
	m.mouseDragging = true
	if !extend {
		m.mouseAnchor = p
		m.buf.SetCursor(p)
		m.buf.ClearSelection()
		return
	}
	anchor := m.buf.Cursor()
	if r, ok := m.buf.Selection(); ok {
		anchor = r.Start
	}
	m.mouseAnchor = anchor
	m.buf.SetCursor(p)
	m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
}

func isWheel(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

// overFindBar reports whether (x, y) lands on the find bar, which sits in
// the top-right corner of the viewport.
func (m Model) overFindBar(x, y int) bool {
	if m.find == nil {
		return false
	}
	w, h := lipgloss.Size(m.find.view(m.cfg.Style))
	return y < h && x >= m.viewport.Width-w
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
