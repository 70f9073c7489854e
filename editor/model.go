package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/session"
)

// Model is a Bubble Tea component that renders and edits one session.
type Model struct {
	cfg  Config
	sess *session.Session

	focused bool

	viewport viewport.Model
	xOffset  int

	layout []lineLayout

	lastVersion uint64
	lastSel     session.Selection

	mouseAnchor   int
	mouseDragging bool
}

// New wraps sess. A zero Theme or KeyMap in cfg is replaced by the default.
func New(sess *session.Session, cfg Config) Model {
	if cfg.Theme.Colors == nil {
		cfg.Theme = DefaultTheme()
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		sess:     sess,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	// The editor owns vertical scrolling; the viewport keymap would shadow
	// editing keys.
	m.viewport.KeyMap = viewport.KeyMap{}
	m.lastVersion = sess.Version()
	m.lastSel = sess.Selection()
	m.rebuildContent()
	return m
}

func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
		m.rebuildContent()
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
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	m.sync()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// SetQuery updates the search query and reveals the first match.
func (m Model) SetQuery(q string) Model {
	m.sess.SetQuery(q)
	m.revealMatch()
	return m
}

// NextMatch activates the following match and scrolls it into view.
func (m Model) NextMatch() Model {
	m.sess.NextMatch()
	m.revealMatch()
	return m
}

// PrevMatch activates the preceding match and scrolls it into view.
func (m Model) PrevMatch() Model {
	m.sess.PrevMatch()
	m.revealMatch()
	return m
}

func (m Model) SetZoom(z float64) Model {
	m.sess.SetZoom(z)
	m.rebuildContent()
	return m
}

// Reload replaces the document with text read from disk.
func (m Model) Reload(text string) Model {
	m.sess.Reload(text)
	m.sync()
	return m
}

// sync re-renders after the session changed underneath the model and
// reports the change to the host.
func (m *Model) sync() {
	ver := m.sess.Version()
	sel := m.sess.Selection()
	if ver == m.lastVersion && sel == m.lastSel {
		m.rebuildContent()
		return
	}
	since := m.lastVersion
	m.lastVersion, m.lastSel = ver, sel
	m.followCursor()
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess, since))
	}
}

func (m *Model) rebuildContent() {
	f := m.sess.Restyle()
	m.layout = buildLayout(m.sess.Text(), f, m.cfg.tabWidth(), m.cfg.Theme)
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) revealMatch() {
	f := m.sess.Restyle()
	if !f.HasScroll {
		m.rebuildContent()
		return
	}
	m.layout = buildLayout(m.sess.Text(), f, m.cfg.tabWidth(), m.cfg.Theme)
	m.reveal(f.ScrollTo.Start)
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	m.layout = buildLayout(m.sess.Text(), m.sess.Restyle(), m.cfg.tabWidth(), m.cfg.Theme)
	m.reveal(m.cursorOffset())
}

// reveal scrolls the least amount that brings offset into view.
func (m *Model) reveal(offset int) {
	row, x := m.offsetToVisual(offset)

	h := m.visibleRowCount()
	if h > 0 {
		y := m.viewport.YOffset
		// SetYOffset clamps against the current content height.
		m.viewport.SetContent(m.renderContent())
		switch {
		case row < y:
			m.viewport.SetYOffset(row)
		case row >= y+h:
			m.viewport.SetYOffset(row - h + 1)
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	switch {
	case x < m.xOffset:
		m.xOffset = x
	case x >= m.xOffset+w:
		m.xOffset = x - w + 1
	}
}

func (m *Model) cursorOffset() int { return m.sess.Caret() }

func (m Model) contentWidth() int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
}
