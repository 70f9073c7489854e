package attr

// Map holds exactly one resolved attribute set per character of a text.
type Map struct {
	cells []Attrs
}

// NewMap returns a map of n characters all resolved to base.
func NewMap(n int, base Attrs) *Map {
	if n < 0 {
		n = 0
	}
	cells := make([]Attrs, n)
	for i := range cells {
		cells[i] = base
	}
	return &Map{cells: cells}
}

func (m *Map) Len() int { return len(m.cells) }

// Apply merges s into every character it covers. The range is clamped to the
// map bounds; empty or inverted ranges are ignored.
func (m *Map) Apply(s Span) {
	start := clamp(s.Start, 0, len(m.cells))
	end := clamp(s.End, 0, len(m.cells))
	for i := start; i < end; i++ {
		m.cells[i] = m.cells[i].Merge(s.Attrs)
	}
}

// ApplyAll applies spans in order.
func (m *Map) ApplyAll(spans []Span) {
	for _, s := range spans {
		m.Apply(s)
	}
}

// At returns the resolved attributes at character i, or the zero set when i
// is out of range.
func (m *Map) At(i int) Attrs {
	if i < 0 || i >= len(m.cells) {
		return Attrs{}
	}
	return m.cells[i]
}

// Runs coalesces neighbouring characters with identical attributes.
func (m *Map) Runs() []Span {
	var out []Span
	for i, a := range m.cells {
		if n := len(out); n > 0 && out[n-1].Attrs == a {
			out[n-1].End = i + 1
			continue
		}
		out = append(out, Span{Start: i, End: i + 1, Attrs: a})
	}
	return out
}

// Equal reports whether both maps resolve every character identically.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.cells) != len(o.cells) {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
