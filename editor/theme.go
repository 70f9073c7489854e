package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/config"
)

// Theme resolves attribute sets to terminal styles.
//
// Font size and the monospace flag have no terminal rendering; headings and
// code stand out through weight and color instead.
type Theme struct {
	// Colors maps color tags to terminal colors.
	Colors map[attr.Color]lipgloss.Color

	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Selection lipgloss.Style
	Ghost     lipgloss.Style

	// Glyphs drawn over the hidden "[ ]" / "[x]" of a task item.
	CheckboxOpen    string
	CheckboxChecked string
}

// DefaultTheme returns the theme for the built-in palette.
func DefaultTheme() Theme { return NewTheme(config.Default().Theme) }

// NewTheme builds a theme from tag → color entries as found in the config
// file.
func NewTheme(colors map[string]string) Theme {
	t := Theme{
		Colors:          make(map[attr.Color]lipgloss.Color, len(colors)),
		Text:            lipgloss.NewStyle(),
		Cursor:          lipgloss.NewStyle().Reverse(true),
		Selection:       lipgloss.NewStyle().Background(lipgloss.Color("238")),
		CheckboxOpen:    "☐",
		CheckboxChecked: "☑",
	}
	for tag, c := range colors {
		t.Colors[attr.Color(tag)] = lipgloss.Color(c)
	}
	t.Ghost = lipgloss.NewStyle().Italic(true)
	if c, ok := t.Colors[attr.ColorDim]; ok {
		t.Ghost = t.Ghost.Foreground(c)
	}
	return t
}

// Attrs returns the style for one resolved attribute set.
func (t Theme) Attrs(a attr.Attrs) lipgloss.Style {
	st := t.Text
	if a.Weight == attr.WeightBold {
		st = st.Bold(true)
	}
	if a.Slant == attr.SlantItalic {
		st = st.Italic(true)
	}
	if a.Strike {
		st = st.Strikethrough(true)
	}
	if a.Underline {
		st = st.Underline(true)
	}
	if c, ok := t.Colors[a.Fg]; ok && a.Fg != attr.ColorNone {
		st = st.Foreground(c)
	}
	if c, ok := t.Colors[a.Bg]; ok && a.Bg != attr.ColorNone {
		st = st.Background(c)
	}
	return st
}

type cellRole uint8

const (
	roleText cellRole = iota
	roleSelected
	roleCursor
	roleGhost
	roleCheckbox
	roleCheckboxChecked
)

type styleKey struct {
	attrs attr.Attrs
	role  cellRole
}

// styleCache memoizes styles for one render pass.
type styleCache struct {
	theme  Theme
	styles map[styleKey]lipgloss.Style
}

func newStyleCache(t Theme) *styleCache {
	return &styleCache{theme: t, styles: make(map[styleKey]lipgloss.Style)}
}

func (c *styleCache) get(k styleKey) lipgloss.Style {
	if st, ok := c.styles[k]; ok {
		return st
	}
	t := c.theme
	base := t.Attrs(k.attrs)
	var st lipgloss.Style
	switch k.role {
	case roleCursor:
		st = t.Cursor.Inherit(base)
	case roleSelected:
		st = t.Selection.Inherit(base)
	case roleGhost:
		st = t.Ghost.Inherit(t.Text)
	case roleCheckbox:
		st = base.UnsetStrikethrough()
	case roleCheckboxChecked:
		st = base.UnsetStrikethrough()
		if col, ok := t.Colors[attr.ColorAccent]; ok {
			st = st.Foreground(col)
		}
	default:
		st = base
	}
	c.styles[k] = st
	return st
}
