package lists

// Edit is a single replacement of the runes [Start, End) of the old text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Diff returns the smallest single replacement turning old into new, so a
// structural change can be committed as one buffer edit.
func Diff(old, new string) Edit {
	a, b := []rune(old), []rune(new)
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	s := 0
	for s < len(a)-p && s < len(b)-p && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}
	return Edit{Start: p, End: len(a) - s, Text: string(b[p : len(b)-s])}
}

// Empty reports whether the edit changes nothing.
func (e Edit) Empty() bool { return e.Start == e.End && e.Text == "" }
