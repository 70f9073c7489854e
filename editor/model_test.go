package editor

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/session"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(session.New("a\nb\nc", session.Options{}), Config{})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(session.New("one\ntwo\nthree\nfour\nfive", session.Options{}), Config{})
	m = m.Blur().SetSize(8, 3)

	got := viewLines(m)
	want := []string{"one", "two", "three"}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestFocus_TogglesCursor(t *testing.T) {
	m := openAtEnd(t, "ab", Config{})
	if !m.Focused() {
		t.Fatalf("new model should be focused")
	}
	if got := stripANSI(m.renderContent()); got != "ab " {
		t.Fatalf("focused render=%q, want %q", got, "ab ")
	}
	m = m.Blur()
	if got := stripANSI(m.renderContent()); got != "ab" {
		t.Fatalf("blurred render=%q, want %q", got, "ab")
	}
}

func TestCursorFollow_ScrollsViewport(t *testing.T) {
	text := ""
	for i := 0; i < 20; i++ {
		text += fmt.Sprintf("line %d\n", i)
	}
	m := openAtEnd(t, text, Config{}).SetSize(20, 5)
	if top := m.ViewportState().TopRow; top != 16 {
		t.Fatalf("top=%d, want %d", top, 16)
	}

	m = press(m, keyOf(tea.KeyCtrlHome))
	if top := m.ViewportState().TopRow; top != 0 {
		t.Fatalf("top after doc start=%d, want 0", top)
	}
}

func TestCursorFollow_ScrollsHorizontally(t *testing.T) {
	m := openAtEnd(t, "0123456789abcdefghij", Config{}).SetSize(10, 2)
	st := m.ViewportState()
	if st.LeftCellOffset != 11 {
		t.Fatalf("left=%d, want %d", st.LeftCellOffset, 11)
	}
	if got := viewLines(m)[0]; got != "bcdefghij" {
		t.Fatalf("row=%q, want %q", got, "bcdefghij")
	}
}

func TestSetQuery_RevealsActiveMatch(t *testing.T) {
	text := ""
	for i := 0; i < 30; i++ {
		text += "filler\n"
	}
	text += "needle"
	s := session.New(text, session.Options{})
	m := New(s, Config{}).SetSize(20, 4)

	m = m.SetQuery("needle")
	_, y, ok := m.OffsetToScreen(30 * 7)
	if !ok || y != 3 {
		t.Fatalf("match on screen row %d ok=%v, want 3 true", y, ok)
	}
	if got := s.Caret(); got != 0 {
		t.Fatalf("search moved the cursor to %d", got)
	}
}

func TestReload_ReplacesText(t *testing.T) {
	var events []ChangeEvent
	m := openAtEnd(t, "old text", Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	m = m.Reload("new")
	if got := viewLines(m)[0]; got != "new" {
		t.Fatalf("row=%q, want %q", got, "new")
	}
	if len(events) != 1 || events[0].Text != "new" {
		t.Fatalf("events=%+v", events)
	}
	if ev := events[0]; !ev.HasEdit || ev.Edit.Source != buffer.ChangeSourceReload {
		t.Fatalf("edit=%+v, want a reload", ev.Edit)
	}
	if sel := m.Session().Selection(); sel.Location != 3 {
		t.Fatalf("selection=%+v, want clamped to 3", sel)
	}
}
