package editor

// screenToOffset maps viewport-local mouse coordinates to a document rune
// offset.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region.
//
// Mapping rules:
// - rows past the document map to its last line
// - columns past the line end map to the line end
// - ghost text maps to its anchor
func (m *Model) screenToOffset(x, y int) int {
	if len(m.layout) == 0 {
		return 0
	}
	row := clampInt(m.viewport.YOffset+y, 0, len(m.layout)-1)
	ll := m.layout[row]

	visualX := maxInt(x, 0) + m.xOffset
	cx := 0
	for _, c := range ll.cells {
		if c.width > 0 && visualX < cx+c.width {
			return c.off
		}
		cx += c.width
	}
	return ll.end
}

// offsetToVisual maps a document rune offset to its layout row and visual
// column, before horizontal scrolling.
func (m *Model) offsetToVisual(offset int) (row, x int) {
	if len(m.layout) == 0 {
		return 0, 0
	}
	row = len(m.layout) - 1
	for i, ll := range m.layout {
		if offset <= ll.end {
			row = i
			break
		}
	}
	ll := m.layout[row]
	if c := ll.cursorCell(offset); c >= 0 {
		return row, ll.cellX(c)
	}
	return row, ll.width
}
