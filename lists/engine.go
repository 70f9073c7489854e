package lists

import "strings"

// Sel is a selection as rune offsets. Start may exceed End; handlers
// normalize and clamp it.
type Sel struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at off.
func Caret(off int) Sel { return Sel{Start: off, End: off} }

func (s Sel) Empty() bool { return s.Start == s.End }

// Doc is the input and output of every handler.
type Doc struct {
	Text string
	Sel  Sel
}

// Options configures indentation.
type Options struct {
	// UseTabs indents with one tab instead of IndentWidth spaces.
	UseTabs bool
	// IndentWidth is the number of spaces per indent unit. Zero means 4.
	IndentWidth int
}

// Engine holds indentation settings. The zero value indents with four
// spaces.
type Engine struct {
	unit  string
	width int
}

func New(opt Options) *Engine {
	if opt.IndentWidth <= 0 {
		opt.IndentWidth = 4
	}
	unit := strings.Repeat(" ", opt.IndentWidth)
	if opt.UseTabs {
		unit = "\t"
	}
	return &Engine{unit: unit, width: opt.IndentWidth}
}

func (e *Engine) indent() (string, int) {
	if e == nil || e.unit == "" {
		return "    ", 4
	}
	return e.unit, e.width
}

// lines is a rune view of a document with line lookups.
type lines []rune

// bounds returns the [start, end) of the line containing off, end excluding
// the newline.
func (l lines) bounds(off int) (int, int) {
	start := off
	for start > 0 && l[start-1] != '\n' {
		start--
	}
	end := off
	for end < len(l) && l[end] != '\n' {
		end++
	}
	return start, end
}

// starts returns the start offsets of every line touched by [from, to]. A
// range ending exactly at a line start does not include that line unless
// the range is empty.
func (l lines) starts(from, to int) []int {
	if to > from {
		if s, _ := l.bounds(to); s == to {
			to--
		}
	}
	first, _ := l.bounds(from)
	out := []int{first}
	for i := first; i < to; i++ {
		if l[i] == '\n' {
			out = append(out, i+1)
		}
	}
	return out
}

func normalize(s Sel, n int) Sel {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return Sel{Start: clampInt(s.Start, 0, n), End: clampInt(s.End, 0, n)}
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

func splice(rs []rune, start, end int, text string) string {
	var b strings.Builder
	b.WriteString(string(rs[:start]))
	b.WriteString(text)
	b.WriteString(string(rs[end:]))
	return b.String()
}
