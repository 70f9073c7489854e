package editor

import (
	"strings"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/checkbox"
	graphemeutil "github.com/iw2rmb/quill/internal/grapheme"
	"github.com/iw2rmb/quill/session"
)

// cell is one drawn grapheme: a document cluster, a checkbox glyph standing
// in for a hidden marker, or a cluster of ghost text.
type cell struct {
	off   int // rune offset of the cluster; ghost cells carry the ghost anchor
	runes int // document runes covered, zero for ghost cells
	text  string
	width int
	attrs attr.Attrs

	ghost   bool
	glyph   bool
	checked bool
}

type lineLayout struct {
	start int // rune offset of the first character
	end   int // rune offset of the terminating newline (or document end)
	cells []cell
	width int
}

// buildLayout splits the document into one layout line per logical line.
// Lines never wrap; the viewport scrolls horizontally instead.
func buildLayout(text string, f session.Frame, tabWidth int, theme Theme) []lineLayout {
	ghostAt := -1
	if f.HasGhost {
		ghostAt = f.Ghost.At
	}
	decos := make(map[int]checkbox.Decoration, len(f.Decorations))
	for _, d := range f.Decorations {
		decos[d.Start] = d
	}

	rows := strings.Split(text, "\n")
	out := make([]lineLayout, 0, len(rows))
	off := 0
	for _, row := range rows {
		ll := lineLayout{start: off}
		col := 0
		for _, g := range graphemeutil.Clusters(row, off) {
			if off == ghostAt {
				col = ll.appendGhost(f.Ghost.Suffix, off, col, tabWidth)
			}
			c := cell{
				off:   off,
				runes: g.Runes,
				text:  g.Text,
				width: clusterWidth(g.Text, col, tabWidth),
				attrs: f.Attrs.At(off),
			}
			if d, ok := decos[off]; ok {
				c.glyph, c.checked = true, d.Checked
				c.text = theme.CheckboxOpen
				if d.Checked {
					c.text = theme.CheckboxChecked
				}
				c.width = clusterWidth(c.text, col, tabWidth)
			} else if g.Text == "\t" || c.attrs.Hidden {
				c.text = strings.Repeat(" ", c.width)
			}
			ll.cells = append(ll.cells, c)
			col += c.width
			off += c.runes
		}
		if off == ghostAt {
			col = ll.appendGhost(f.Ghost.Suffix, off, col, tabWidth)
		}
		ll.end = off
		ll.width = col
		out = append(out, ll)
		off++ // newline
	}
	return out
}

func (ll *lineLayout) appendGhost(suffix string, at, col, tabWidth int) int {
	for _, g := range graphemeutil.Clusters(suffix, at) {
		w := clusterWidth(g.Text, col, tabWidth)
		ll.cells = append(ll.cells, cell{off: at, text: g.Text, width: w, ghost: true})
		col += w
	}
	return col
}

// cursorCell returns the index of the cell the cursor is drawn on, or -1 when
// the cursor sits at the end of the line.
func (ll lineLayout) cursorCell(cursor int) int {
	for i, c := range ll.cells {
		if c.off == cursor && (c.ghost || c.runes > 0) {
			return i
		}
		if !c.ghost && cursor > c.off && cursor < c.off+c.runes {
			return i
		}
	}
	return -1
}

// cellX returns the visual column where cell i starts.
func (ll lineLayout) cellX(i int) int {
	x := 0
	for j := 0; j < i && j < len(ll.cells); j++ {
		x += ll.cells[j].width
	}
	return x
}

// renderState carries what one render pass needs beyond the layout.
type renderState struct {
	styles    *styleCache
	sel       session.Selection
	cursor    int
	hasCursor bool
	left      int
	right     int
}

func (rs renderState) lineHasCursor(ll lineLayout) bool {
	return rs.hasCursor && rs.cursor >= ll.start && rs.cursor <= ll.end
}

// renderLine paints the cells inside [left, right).
func renderLine(ll lineLayout, rs renderState) string {
	var lw lineWriter
	lw.styles = rs.styles

	cur := -1
	eol := false
	if rs.lineHasCursor(ll) {
		cur = ll.cursorCell(rs.cursor)
		eol = cur < 0
	}

	x := 0
	for i, c := range ll.cells {
		segL := x
		segR := x + c.width
		x = segR
		spanL := maxInt(segL, rs.left)
		spanR := minInt(segR, rs.right)
		if spanL >= spanR {
			continue
		}

		k := styleKey{attrs: c.attrs, role: roleText}
		switch {
		case c.ghost && i != cur:
			k = styleKey{role: roleGhost}
		case i == cur:
			k.role = roleCursor
		case !c.ghost && rs.sel.Length > 0 && c.off < rs.sel.End() && c.off+c.runes > rs.sel.Location:
			k.role = roleSelected
		case c.glyph && c.checked:
			k.role = roleCheckboxChecked
		case c.glyph:
			k.role = roleCheckbox
		}

		text := c.text
		if spanR-spanL != c.width {
			// Partially visible wide cluster: keep alignment with blanks.
			text = strings.Repeat(" ", spanR-spanL)
		}
		if k.role == roleCursor && graphemeutil.IsSpace(text) {
			// Terminals may drop trailing spaces; NBSP keeps the cursor visible.
			text = strings.ReplaceAll(text, " ", "\u00a0")
		}
		lw.write(k, text)
	}
	if eol && ll.width >= rs.left && ll.width < rs.right {
		lw.write(styleKey{role: roleCursor}, " ")
	}
	return lw.String()
}

// lineWriter coalesces neighbouring cells that share a style into one
// rendered run.
type lineWriter struct {
	styles  *styleCache
	sb      strings.Builder
	pending strings.Builder
	key     styleKey
	open    bool
}

func (w *lineWriter) write(k styleKey, text string) {
	if w.open && k != w.key {
		w.flush()
	}
	w.key, w.open = k, true
	w.pending.WriteString(text)
}

func (w *lineWriter) flush() {
	if !w.open {
		return
	}
	w.sb.WriteString(w.styles.get(w.key).Render(w.pending.String()))
	w.pending.Reset()
	w.open = false
}

func (w *lineWriter) String() string {
	w.flush()
	return w.sb.String()
}

func (m *Model) renderContent() string {
	if len(m.layout) == 0 {
		return ""
	}
	rs := renderState{
		styles:    newStyleCache(m.cfg.Theme),
		sel:       m.sess.Selection(),
		cursor:    m.cursorOffset(),
		hasCursor: m.focused,
		left:      m.xOffset,
		right:     m.xOffset + m.contentWidth(),
	}
	if m.contentWidth() <= 0 {
		rs.right = int(^uint(0) >> 1)
	}
	out := make([]string, len(m.layout))
	for i, ll := range m.layout {
		out[i] = renderLine(ll, rs)
	}
	return strings.Join(out, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
