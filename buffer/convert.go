package buffer

// Offset returns the flat rune offset of p, clamped into the document. Each
// line break counts as one rune.
func (b *Buffer) Offset(p Pos) int {
	p = b.Clamp(p)
	off := p.Col
	for _, line := range b.lines[:p.Row] {
		off += len(line) + 1
	}
	return off
}

// PosAt returns the position of a flat rune offset. Offsets outside the
// document clamp to its start or end.
func (b *Buffer) PosAt(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// Len returns the document length in runes, counting each line break as one
// rune.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}
