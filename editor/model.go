package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/spanfind/buffer"
	"github.com/iw2rmb/spanfind/highlight"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	width    int
	height   int
	xOffset  int

	find *findBar

	tokens        []highlight.Token
	tokensVersion uint64
	tokensValid   bool

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if cfg.KeyMap.Left.Keys() == nil {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.KeyMap.Find.Open.Keys() == nil {
		cfg.KeyMap.Find = DefaultFindKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = maxInt(m.height-m.statusHeight(), 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) statusHeight() int {
	if m.cfg.ShowStatusLine && m.height > 1 {
		return 1
	}
	return 0
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	prevVersion := m.buf.Version()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Don't force-follow cursor here; allow manual scrolling via mouse wheel.
		m.syncFromBuffer()
		m.emitChange(prevVersion)
		return m, cmd
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}

	// Hosts may also mutate the buffer directly between messages.
	if m.syncFromBuffer() {
		m.followCursor()
	}
	m.emitChange(prevVersion)
	return m, cmd
}

func (m Model) emitChange(prevVersion uint64) {
	if m.cfg.OnChange == nil || m.buf.Version() == prevVersion {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.buf))
}

func (m Model) View() string {
	view := m.viewport.View()
	if m.find != nil {
		view = m.overlayFindBar(view)
	}
	if m.statusHeight() > 0 {
		view += "\n" + m.renderStatusLine()
	}
	return view
}

// syncFromBuffer re-renders after buffer changes and reports whether the
// cursor moved.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	if m.find != nil {
		m.find.refresh()
	}
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// highlightTokens returns syntax tokens for the current text, recomputing
// them only after text changes.
func (m *Model) highlightTokens() []highlight.Token {
	if m.cfg.Highlighter == nil {
		return nil
	}
	if m.tokensValid && m.tokensVersion == m.buf.TextVersion() {
		return m.tokens
	}
	toks, err := m.cfg.Highlighter.Highlight(m.buf)
	if err != nil {
		// Fall back to plain text.
		toks = nil
	}
	m.tokens = toks
	m.tokensVersion = m.buf.TextVersion()
	m.tokensValid = true
	return toks
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	// Viewport lines are 0-based; buffer rows are 1-based.
	line := cur.Row - 1
	y := m.viewport.YOffset
	switch {
	case line < y:
		m.viewport.SetYOffset(line)
	case line >= y+h:
		m.viewport.SetYOffset(line - h + 1)
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	cell := cellForCol(layoutLine([]rune(m.buf.Line(cur.Row)), m.cfg.tabWidth()), cur.Col)
	prevX := m.xOffset
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
	if prevX != m.xOffset {
		m.rebuildContent()
	}
}
