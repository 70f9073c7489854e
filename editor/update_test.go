package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/session"
)

func TestUpdate_EnterContinuesList(t *testing.T) {
	m := openAtEnd(t, "- [ ] item", Config{})
	m = press(m, keyOf(tea.KeyEnter))
	if got, want := m.Session().Text(), "- [ ] item\n- [ ] "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	m = press(m, keyOf(tea.KeyEnter))
	if got, want := m.Session().Text(), "- [ ] item\n"; got != want {
		t.Fatalf("text after empty item=%q, want %q", got, want)
	}
}

func TestUpdate_EnterOnPlainLine(t *testing.T) {
	m := openAtEnd(t, "plain", Config{})
	m = press(m, keyOf(tea.KeyEnter))
	if got, want := m.Session().Text(), "plain\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestUpdate_BackspaceDefault(t *testing.T) {
	m := openAtEnd(t, "abc", Config{})
	m = press(m, keyOf(tea.KeyBackspace))
	if got := m.Session().Text(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
}

func TestUpdate_TabAcceptsGhostThenIndents(t *testing.T) {
	m := openAtEnd(t, "function ", Config{})
	m = press(m, runes("fun"), keyOf(tea.KeyTab))
	if got, want := m.Session().Text(), "function function"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	m = press(m, keyOf(tea.KeyTab))
	if got, want := m.Session().Text(), "function function\t"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestUpdate_EscDropsGhost(t *testing.T) {
	m := openAtEnd(t, "function ", Config{})
	m = press(m, runes("fun"))
	if _, ok := m.Session().Ghost(); !ok {
		t.Fatalf("expected a suggestion")
	}
	m = press(m, keyOf(tea.KeyEsc))
	if _, ok := m.Session().Ghost(); ok {
		t.Fatalf("esc should drop the suggestion")
	}
	if got := viewLines(m)[0]; got != "function fun" {
		t.Fatalf("row=%q", got)
	}
}

func TestUpdate_ShiftTabOutdents(t *testing.T) {
	m := openAtEnd(t, "    - item", Config{})
	m = press(m, keyOf(tea.KeyShiftTab))
	if got, want := m.Session().Text(), "- item"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := openAtEnd(t, "a", Config{})
	m = press(m, runes("b"), keyOf(tea.KeyCtrlZ))
	if got := m.Session().Text(); got != "a" {
		t.Fatalf("after undo text=%q", got)
	}
	m = press(m, keyOf(tea.KeyCtrlY))
	if got := m.Session().Text(); got != "ab" {
		t.Fatalf("after redo text=%q", got)
	}
}

func TestUpdate_ReadOnlyIgnoresEdits(t *testing.T) {
	m := openAtEnd(t, "- item", Config{ReadOnly: true})
	m = press(m, runes("x"), keyOf(tea.KeyEnter), keyOf(tea.KeyBackspace), keyOf(tea.KeyTab))
	if got := m.Session().Text(); got != "- item" {
		t.Fatalf("text=%q", got)
	}
	m = press(m, keyOf(tea.KeyLeft))
	if got := m.Session().Caret(); got != 5 {
		t.Fatalf("caret=%d, want movement to still work", got)
	}
}

func TestUpdate_PasteNormalizesNewlines(t *testing.T) {
	m := openAtEnd(t, "", Config{})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb"), Paste: true})
	if got := m.Session().Text(); got != "a\nb" {
		t.Fatalf("text=%q", got)
	}
}

func TestUpdate_Clipboard(t *testing.T) {
	cb := &memClipboard{}
	m := openAtEnd(t, "hello world", Config{Clipboard: cb})
	m.Session().SetSelection(session.Selection{Location: 0, Length: 5})

	m = press(m, keyOf(tea.KeyCtrlC))
	if cb.text != "hello" {
		t.Fatalf("copied %q", cb.text)
	}
	m = press(m, keyOf(tea.KeyCtrlX))
	if got := m.Session().Text(); got != " world" {
		t.Fatalf("after cut text=%q", got)
	}
	m = press(m, keyOf(tea.KeyEnd), keyOf(tea.KeyCtrlV))
	if got := m.Session().Text(); got != " worldhello" {
		t.Fatalf("after paste text=%q", got)
	}
}

func TestUpdate_CopyDropsGhost(t *testing.T) {
	cb := &memClipboard{}
	m := openAtEnd(t, "function ", Config{Clipboard: cb})
	m = press(m, runes("fun"))
	if _, ok := m.Session().Ghost(); !ok {
		t.Fatalf("expected a suggestion")
	}
	m = press(m, keyOf(tea.KeyCtrlC))
	if _, ok := m.Session().Ghost(); ok {
		t.Fatalf("copy should drop the suggestion")
	}
	if got := m.Session().Text(); got != "function fun" {
		t.Fatalf("text=%q", got)
	}
}

func TestUpdate_SearchKeysCycleMatches(t *testing.T) {
	m := openAtEnd(t, "x x x", Config{})
	m = m.SetQuery("x")
	m = press(m, keyOf(tea.KeyCtrlN), keyOf(tea.KeyCtrlN), keyOf(tea.KeyCtrlN))
	if f := m.Session().Restyle(); f.Active != 0 {
		t.Fatalf("active=%d, want wrap to 0", f.Active)
	}
	m = press(m, keyOf(tea.KeyCtrlP))
	if f := m.Session().Restyle(); f.Active != 2 {
		t.Fatalf("active=%d, want 2", f.Active)
	}
}

func TestUpdate_ZoomKeys(t *testing.T) {
	m := openAtEnd(t, "text", Config{})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("="), Alt: true})
	if z := m.Session().Zoom(); z <= 1 {
		t.Fatalf("zoom=%v, want > 1", z)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0"), Alt: true})
	if z := m.Session().Zoom(); z != 1 {
		t.Fatalf("zoom=%v, want 1", z)
	}
}

func TestUpdate_OnChange(t *testing.T) {
	var got []ChangeEvent
	m := openAtEnd(t, "a", Config{OnChange: func(ev ChangeEvent) { got = append(got, ev) }})
	m = press(m, runes("b"))
	if len(got) != 1 || got[0].Text != "ab" || got[0].Selection.Location != 2 {
		t.Fatalf("events=%+v", got)
	}
	if e := got[0].Edit; !got[0].HasEdit || e.Start != 1 || e.End != 1 || e.Text != "b" {
		t.Fatalf("edit=%+v, want insert of %q at 1", e, "b")
	}
	m = press(m, keyOf(tea.KeyLeft))
	if len(got) != 2 || got[1].HasEdit {
		t.Fatalf("cursor move must not carry an edit: %+v", got)
	}
	press(m, tea.WindowSizeMsg{Width: 10, Height: 2})
	if len(got) != 2 {
		t.Fatalf("resize should not report a change")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := openAtEnd(t, "a", Config{}).Blur()
	m = press(m, runes("b"))
	if got := m.Session().Text(); got != "a" {
		t.Fatalf("text=%q", got)
	}
}
