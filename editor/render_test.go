package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/quill/session"
)

func TestRender_CheckboxGlyphsOverHiddenMarkers(t *testing.T) {
	m := New(session.New("- [ ] open\n- [x] done", session.Options{}), Config{}).Blur().SetSize(20, 2)
	got := viewLines(m)
	want := []string{"- ☐   open", "- ☑   done"}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("rows=%q, want %q", got, want)
	}
}

func TestRender_CustomGlyphs(t *testing.T) {
	th := DefaultTheme()
	th.CheckboxOpen, th.CheckboxChecked = "o", "x"
	m := New(session.New("* [X] done", session.Options{}), Config{Theme: th}).Blur().SetSize(20, 1)
	if got := viewLines(m)[0]; got != "* x   done" {
		t.Fatalf("row=%q, want %q", got, "* x   done")
	}
}

func TestRender_TabsExpandToStops(t *testing.T) {
	m := New(session.New("\tx\nab\ty", session.Options{}), Config{TabWidth: 4}).Blur().SetSize(20, 2)
	got := viewLines(m)
	if got[0] != "    x" || got[1] != "ab  y" {
		t.Fatalf("rows=%q", got)
	}
}

func TestRender_GhostTextAfterCursor(t *testing.T) {
	m := openAtEnd(t, "function ", Config{})
	m = press(m, runes("f"), runes("u"), runes("n"))
	if got := viewLines(m)[0]; got != "function function" {
		t.Fatalf("row=%q, want ghost suffix drawn", got)
	}
	if got := m.Session().Text(); got != "function fun" {
		t.Fatalf("text=%q, ghost must not touch the buffer", got)
	}
}

func TestRender_UsesThemeColors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	m := New(session.New("# Title", session.Options{}), Config{}).Blur().SetSize(20, 1)
	out := m.renderContent()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected styled output, got %q", out)
	}
	if got := stripANSI(out); got != "# Title" {
		t.Fatalf("text=%q, want %q", got, "# Title")
	}
}

func TestRender_SelectionSplitsRuns(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	s := session.New("abcdef", session.Options{})
	m := New(s, Config{}).Blur().SetSize(20, 1)
	plain := m.renderContent()

	s.SetSelection(session.Selection{Location: 2, Length: 2})
	m = m.Focus()
	sel := m.renderContent()
	if sel == plain {
		t.Fatalf("selection did not change the rendering")
	}
	if got := stripANSI(sel); got != "abcdef" {
		t.Fatalf("text=%q", got)
	}
}

func TestTheme_Attrs(t *testing.T) {
	th := NewTheme(map[string]string{"accent": "#ff0000"})
	if _, ok := th.Colors["accent"]; !ok {
		t.Fatalf("accent color missing")
	}
	if !th.Ghost.GetItalic() {
		t.Fatalf("ghost style should be italic")
	}
}

func TestBuildLayout_WideClusters(t *testing.T) {
	s := session.New("a界b", session.Options{})
	ll := buildLayout(s.Text(), s.Restyle(), 4, DefaultTheme())
	if len(ll) != 1 || ll[0].width != 4 {
		t.Fatalf("layout=%+v, want one line of width 4", ll)
	}
	if x := ll[0].cellX(2); x != 3 {
		t.Fatalf("cellX(2)=%d, want 3", x)
	}
}
