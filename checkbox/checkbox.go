// Package checkbox finds task-list checkbox tokens, hit-tests pointer offsets
// against them and produces the single-rune edit that toggles one.
//
// All offsets are rune offsets into the whole document. Tokens are derived
// from the text on every call and must not be kept across edits.
package checkbox

import (
	"regexp"

	"github.com/iw2rmb/quill/internal/scan"
)

var tokenRe = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d{1,9}\.) (\[)( |x|X)(\])(?: |$)`)

// Token is one checkbox on one line.
type Token struct {
	LineStart int
	LineEnd   int // exclusive, before the newline

	Open  int // '['
	State int // ' ', 'x' or 'X'
	Close int // ']'

	Checked bool
}

// Body returns the rune offset where the item text begins, after the space
// following the closing bracket (clamped to the line end).
func (t Token) Body() int {
	if t.Close+2 > t.LineEnd {
		return t.LineEnd
	}
	return t.Close + 2
}

// Scan returns every checkbox token in text in document order.
func Scan(text string) []Token {
	idx := scan.NewIndex(text)
	var out []Token
	for _, m := range scan.FindAll(tokenRe, text, nil) {
		open, _, _ := m.Group(1)
		state, stateEnd, _ := m.Group(2)
		closeAt, _, _ := m.Group(3)

		lineEnd := m[1]
		for lineEnd < len(text) && text[lineEnd] != '\n' {
			lineEnd++
		}
		out = append(out, Token{
			LineStart: idx.Rune(m[0]),
			LineEnd:   idx.Rune(lineEnd),
			Open:      idx.Rune(open),
			State:     idx.Rune(state),
			Close:     idx.Rune(closeAt),
			Checked:   text[state:stateEnd] != " ",
		})
	}
	return out
}

// HitTest returns the token whose bracket span [Open, Close] contains offset.
// Offsets elsewhere on the line, including the item text, do not hit.
func HitTest(tokens []Token, offset int) (Token, bool) {
	for _, t := range tokens {
		if offset >= t.Open && offset <= t.Close {
			return t, true
		}
		if t.Open > offset {
			break
		}
	}
	return Token{}, false
}

// Edit replaces the runes [Start, End) with Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Toggle returns the edit flipping the state character of t.
func Toggle(t Token) Edit {
	next := "x"
	if t.Checked {
		next = " "
	}
	return Edit{Start: t.State, End: t.State + 1, Text: next}
}

// Decoration is a span the surface paints a checkbox glyph over after the
// normal text pass.
type Decoration struct {
	Start   int
	End     int
	Checked bool
}

// Decorations maps tokens to the overlay spans covering "[ ]" / "[x]".
func Decorations(tokens []Token) []Decoration {
	out := make([]Decoration, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Decoration{Start: t.Open, End: t.Close + 1, Checked: t.Checked})
	}
	return out
}
