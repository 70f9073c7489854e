package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

const zoomStep = 0.1

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.sess == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.sess.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	s := m.sess

	switch {
	case key.Matches(msg, km.Left):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		s.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		s.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		s.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		s.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly && !s.Backspace() {
			s.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			s.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly && !s.Newline() {
			s.InsertNewline()
		}
	case key.Matches(msg, km.Tab):
		if !m.cfg.ReadOnly && !s.Tab() {
			s.InsertText("\t")
		}
	case key.Matches(msg, km.ShiftTab):
		if !m.cfg.ReadOnly {
			s.ShiftTab()
		}
	case key.Matches(msg, km.Cancel):
		s.CancelGhost()

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = s.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = s.Redo()
		}

	case key.Matches(msg, km.Copy):
		s.CancelGhost()
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	case key.Matches(msg, km.NextMatch):
		return m.NextMatch(), nil
	case key.Matches(msg, km.PrevMatch):
		return m.PrevMatch(), nil

	case key.Matches(msg, km.ZoomIn):
		return m.SetZoom(s.Zoom() + zoomStep), nil
	case key.Matches(msg, km.ZoomOut):
		return m.SetZoom(max(s.Zoom()-zoomStep, zoomStep)), nil
	case key.Matches(msg, km.ZoomReset):
		return m.SetZoom(1), nil

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				s.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if text := m.selectedText(); text != "" {
		_ = m.cfg.Clipboard.WriteText(text)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	text := m.selectedText()
	if text == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(text)
	m.sess.InsertText("")
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	text, err := m.cfg.Clipboard.ReadText()
	if err != nil || text == "" {
		return
	}
	m.sess.InsertText(normalizeNewlines(text))
}

func (m Model) selectedText() string {
	sel := m.sess.Selection()
	if sel.Length == 0 {
		return ""
	}
	rs := []rune(m.sess.Text())
	end := minInt(sel.End(), len(rs))
	start := minInt(sel.Location, end)
	return string(rs[start:end])
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
