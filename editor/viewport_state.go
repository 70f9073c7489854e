package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the document line rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal scroll in cells.
	LeftCellOffset int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		TopRow:         top,
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: m.xOffset,
	}
}

// ScreenToOffset maps viewport-local screen coordinates to a document rune
// offset.
func (m Model) ScreenToOffset(x, y int) int {
	return (&m).screenToOffset(x, y)
}

// OffsetToScreen maps a document rune offset to viewport-local screen
// coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) OffsetToScreen(offset int) (x int, y int, ok bool) {
	row, vx := (&m).offsetToVisual(offset)
	x = vx - m.xOffset
	y = row - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < 0 || x >= m.contentWidth() {
		return x, y, false
	}
	return x, y, true
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
