package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/session"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.Scroll == ScrollFree || !isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	if !m.focused || m.sess == nil {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.inView(msg.X, msg.Y) {
			m.press(m.screenToOffset(msg.X, msg.Y), msg.Shift)
		}
	case tea.MouseActionMotion:
		if m.mouseDragging {
			x, y := m.clampToView(msg.X, msg.Y)
			m.selectTo(m.screenToOffset(x, y))
		}
	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, cmd
}

// press handles a left-button press at off. Shift extends the selection
// from its anchor; a plain press on a checkbox toggles it and leaves the
// cursor alone.
func (m *Model) press(off int, shift bool) {
	if shift {
		if !m.mouseDragging {
			m.mouseAnchor = m.sess.Selection().Location
		}
		m.mouseDragging = true
		m.selectTo(off)
		return
	}
	if !m.cfg.ReadOnly && m.sess.Click(off) {
		return
	}
	m.mouseAnchor = off
	m.mouseDragging = true
	m.sess.SetSelection(session.Selection{Location: off})
}

func (m *Model) selectTo(off int) {
	m.sess.SetSelection(session.Selection{Location: m.mouseAnchor, Length: off - m.mouseAnchor})
}

func isWheel(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

func (m Model) inView(x, y int) bool {
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampToView(x, y int) (int, int) {
	return clampInt(x, 0, max(m.viewport.Width-1, 0)), clampInt(y, 0, max(m.viewport.Height-1, 0))
}
