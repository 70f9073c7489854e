package mdstyle

import (
	"unicode"

	"github.com/iw2rmb/quill/attr"
)

// FindAll returns the non-overlapping case-insensitive occurrences of query
// in text as rune ranges.
func FindAll(text, query string) []Range {
	q := fold([]rune(query))
	if len(q) == 0 {
		return nil
	}
	t := fold([]rune(text))

	var out []Range
	for i := 0; i+len(q) <= len(t); {
		if equalRunes(t[i:i+len(q)], q) {
			out = append(out, Range{Start: i, End: i + len(q)})
			i += len(q)
			continue
		}
		i++
	}
	return out
}

// search highlights every occurrence and returns the matches with the
// normalized active index.
func search(p *pass, query string, active int) ([]Range, int) {
	matches := FindAll(p.text, query)
	if len(matches) == 0 {
		return nil, -1
	}
	active %= len(matches)
	if active < 0 {
		active += len(matches)
	}
	for i, r := range matches {
		c := attr.ColorSearchMatch
		if i == active {
			c = attr.ColorSearchActive
		}
		p.m.Apply(attr.Span{Start: r.Start, End: r.End, Attrs: attr.Attrs{}.WithBg(c)})
	}
	return matches, active
}

// fold lower-cases rune by rune so offsets stay aligned with the source.
func fold(rs []rune) []rune {
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
