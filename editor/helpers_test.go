package editor

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/session"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRe.ReplaceAllString(s, "") }

// openAtEnd returns a focused editor with the cursor at the end of text.
func openAtEnd(t *testing.T, text string, cfg Config) Model {
	t.Helper()
	s := session.New(text, session.Options{})
	s.SetSelection(session.Selection{Location: len([]rune(text))})
	return New(s, cfg).SetSize(40, 10)
}

func viewLines(m Model) []string {
	lines := strings.Split(stripANSI(m.View()), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(strings.ReplaceAll(lines[i], " ", " "), " ")
	}
	return lines
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

type memClipboard struct{ text string }

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}
