package buffer

// Pos is a 0-based position in the document; Col counts runes.
type Pos struct {
	Row int
	Col int
}

// Before reports whether p comes before q in document order.
func (p Pos) Before(q Pos) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

// Range is a half-open span [Start, End) of the document.
type Range struct {
	Start Pos
	End   Pos
}

// Ordered returns r with Start not after End.
func (r Range) Ordered() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

func (r Range) Empty() bool { return r.Start == r.End }

// Clamp moves p to the nearest position inside the document.
func (b *Buffer) Clamp(p Pos) Pos {
	row := clampInt(p.Row, 0, len(b.lines)-1)
	return Pos{Row: row, Col: clampInt(p.Col, 0, len(b.lines[row]))}
}

func (b *Buffer) clampRange(r Range) Range {
	return Range{Start: b.Clamp(r.Start), End: b.Clamp(r.End)}.Ordered()
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
