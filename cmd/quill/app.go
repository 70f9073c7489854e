package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/filewatch"
	"github.com/iw2rmb/quill/internal/logging"
	"github.com/iw2rmb/quill/session"
)

const outlineWidth = 28

type appKeys struct {
	Quit, Save, Find, Outline, Help key.Binding

	editor editor.KeyMap
}

func defaultAppKeys(ed editor.KeyMap) appKeys {
	return appKeys{
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Find:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		Outline: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "outline")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		editor:  ed,
	}
}

func (k appKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Find, k.Help, k.Quit}
}

func (k appKeys) FullHelp() [][]key.Binding {
	own := []key.Binding{k.Save, k.Find, k.Outline, k.Help, k.Quit}
	return append([][]key.Binding{own}, k.editor.FullHelp()...)
}

// savedMsg reports the result of a write to disk.
type savedMsg struct {
	text string
	err  error
}

// reloadedMsg carries the file contents after an external change.
type reloadedMsg struct {
	text    string
	removed bool
	err     error
}

type app struct {
	log     *zap.Logger
	path    string
	keys    appKeys
	watcher *filewatch.Watcher

	editor editor.Model
	search textinput.Model
	help   help.Model

	finding     bool
	showOutline bool
	showHelp    bool

	// disk is the text last read from or written to path.
	disk   string
	status string

	width, height int
}

func newApp(ctx context.Context, cfg config.Config, opts options, text string, w *filewatch.Watcher) app {
	log := logging.L(ctx)
	ghostOpt, ghostOn := cfg.GhostOptions()
	sess := session.New(text, session.Options{
		Logger:  log,
		Style:   cfg.StyleOptions(),
		Lists:   cfg.ListOptions(),
		Ghost:   ghostOpt,
		NoGhost: !ghostOn,
		History: cfg.Editor.HistoryLimit,
	})
	sess.SetZoom(cfg.Style.Zoom)

	search := textinput.New()
	search.Placeholder = "Find"
	search.CharLimit = 256
	search.Prompt = "/ "

	scroll := editor.ScrollFree
	if cfg.Editor.PinScroll {
		scroll = editor.ScrollPinned
	}
	km := editor.DefaultKeyMap()
	ed := editor.New(sess, editor.Config{
		Theme:    editor.NewTheme(cfg.Theme),
		KeyMap:   km,
		TabWidth: cfg.Editor.TabWidth,
		ReadOnly: opts.readOnly,
		Scroll:   scroll,
	})

	return app{
		log:     log.With(zap.String("path", opts.path)),
		path:    opts.path,
		keys:    defaultAppKeys(km),
		watcher: w,
		editor:  ed,
		search:  search,
		help:    help.New(),
		disk:    text,
	}
}

func (a app) Init() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Wait()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return a, nil

	case filewatch.ChangedMsg:
		return a, tea.Batch(a.readBack(filewatch.Event(msg)), a.watcher.Wait())

	case reloadedMsg:
		switch {
		case msg.err != nil:
			a.status = msg.err.Error()
		case msg.removed:
			a.status = "file removed on disk"
		case msg.text != a.disk:
			a.editor = a.editor.Reload(msg.text)
			a.disk = msg.text
			a.status = "reloaded"
		}
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.status = msg.err.Error()
			a.log.Error("save failed", zap.Error(msg.err))
			return a, nil
		}
		a.disk = msg.text
		a.status = "saved"
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.finding {
			return a.updateFind(msg)
		}
		switch {
		case key.Matches(msg, a.keys.Save):
			return a, a.save()
		case key.Matches(msg, a.keys.Find):
			a.finding = true
			a.search.SetValue(a.editor.Session().Query())
			a.layout()
			return a, a.search.Focus()
		case key.Matches(msg, a.keys.Outline):
			a.showOutline = !a.showOutline
			a.layout()
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			a.layout()
			return a, nil
		}
		a.status = ""
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive
	case tea.KeyEnter:
		a.editor = a.editor.NextMatch()
		return a, nil
	case tea.KeyEsc:
		a.finding = false
		a.search.Blur()
		a.editor = a.editor.SetQuery("")
		a.layout()
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.editor = a.editor.SetQuery(a.search.Value())
	return a, cmd
}

// layout hands the space left by the status bar, search prompt, help and
// outline to the editor.
func (a *app) layout() {
	a.help.Width = a.width
	h := a.height - 1
	if a.finding {
		h--
	}
	if a.showHelp {
		h -= lipgloss.Height(a.helpView())
	}
	w := a.width
	if a.showOutline {
		w -= outlineWidth
	}
	a.editor = a.editor.SetSize(w, h)
	a.search.Width = a.width - len(a.search.Prompt) - 1
}

func (a app) save() tea.Cmd {
	path, text := a.path, a.editor.Session().Text()
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return savedMsg{err: fmt.Errorf("writing %s: %w", path, err)}
		}
		return savedMsg{text: text}
	}
}

func (a app) readBack(ev filewatch.Event) tea.Cmd {
	return func() tea.Msg {
		if ev.Removed {
			return reloadedMsg{removed: true}
		}
		text, err := readDocument(ev.Path)
		return reloadedMsg{text: text, err: err}
	}
}

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	outlineStyle = lipgloss.NewStyle().Width(outlineWidth - 1).MarginRight(1)
)

func (a app) View() string {
	body := a.editor.View()
	if a.showOutline {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.outlineView(), body)
	}
	parts := []string{body}
	if a.finding {
		parts = append(parts, a.search.View())
	}
	if a.showHelp {
		parts = append(parts, a.helpView())
	}
	parts = append(parts, a.statusView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a app) outlineView() string {
	entries := a.editor.Session().Outline()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, strings.Repeat("  ", e.Level-1)+e.Text)
	}
	h := a.editor.ViewportState().VisibleRows
	return outlineStyle.Height(h).MaxHeight(h).Render(strings.Join(lines, "\n"))
}

func (a app) helpView() string {
	return a.help.FullHelpView(a.keys.FullHelp())
}

func (a app) statusView() string {
	s := a.editor.Session()
	name := a.path
	if s.Text() != a.disk {
		name += " [+]"
	}
	left := name
	if a.status != "" {
		left += "  " + a.status
	}
	right := a.help.ShortHelpView(a.keys.ShortHelp())
	if f := s.Restyle(); s.Query() != "" {
		right = fmt.Sprintf("%d matches", len(f.Matches))
		if f.Active >= 0 {
			right = fmt.Sprintf("%d/%d", f.Active+1, len(f.Matches))
		}
	}
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 && s.Query() == "" {
		right = ""
		gap = a.width - lipgloss.Width(left)
	}
	gap = max(gap, 1)
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}
