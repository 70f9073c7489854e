package codeblock

import (
	"regexp"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/internal/scan"
)

var (
	numberRe = regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|\d[\d_]*(?:\.\d+)?(?:[eE][+-]?\d+)?)\b`)
	callRe   = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
)

// Highlight returns the token spans for a fenced block body. Offsets are in
// runes relative to the start of body. An empty tag yields no spans.
func Highlight(body, tag string) []attr.Span {
	if tag == "" || body == "" {
		return nil
	}
	lang, _ := Lookup(tag)
	return lang.Highlight(body)
}

// Highlight applies the language's token classes to body in precedence
// order, lowest first.
func (l *Language) Highlight(body string) []attr.Span {
	h := highlighter{body: body, idx: scan.NewIndex(body)}
	fg := func(c attr.Color) attr.Attrs { return attr.Attrs{}.WithFg(c) }

	if l.keywords != nil {
		h.rule(Rule{Pattern: l.keywords, Color: attr.ColorKeyword}, fg)
	}
	if l.types != nil {
		h.rule(Rule{Pattern: l.types, Color: attr.ColorType}, fg)
	}
	h.rule(Rule{Pattern: numberRe, Color: attr.ColorNumber}, fg)
	if !l.NoCalls {
		h.rule(Rule{Pattern: callRe, Group: 1, Color: attr.ColorFunction, Keep: func(s string, m scan.Match) bool {
			start, end, _ := m.Group(1)
			return !l.IsKeyword(s[start:end])
		}}, fg)
	}
	for _, r := range l.Extras {
		h.rule(r, fg)
	}

	var strs []scan.Match
	for _, r := range l.Strings {
		strs = append(strs, h.rule(r, fg)...)
	}

	comment := func(attr.Color) attr.Attrs {
		return attr.Attrs{}.WithFg(attr.ColorComment).WithSlant(attr.SlantItalic)
	}
	// A comment opener inside a string literal is part of the literal; the
	// search resumes right after it so a real comment later on the line
	// still matches.
	outsideStrings := func(_ string, m scan.Match) bool {
		for _, s := range strs {
			if m[0] > s[0] && m[0] < s[1] {
				return false
			}
		}
		return true
	}
	for _, r := range l.Comments {
		h.guarded(r, comment, outsideStrings)
	}
	return h.spans
}

type highlighter struct {
	body  string
	idx   scan.Index
	spans []attr.Span
}

// rule scans body with r and records a span for every kept match. It returns
// the byte ranges of the recorded spans.
func (h *highlighter) rule(r Rule, style func(attr.Color) attr.Attrs) []scan.Match {
	return h.guarded(r, style, nil)
}

func (h *highlighter) guarded(r Rule, style func(attr.Color) attr.Attrs, guard scan.Guard) []scan.Match {
	var kept []scan.Match
	for _, m := range scan.FindAll(r.Pattern, h.body, guard) {
		if r.Keep != nil && !r.Keep(h.body, m) {
			continue
		}
		start, end, ok := m.Group(r.Group)
		if !ok || end <= start {
			continue
		}
		kept = append(kept, scan.Match{start, end})
		h.spans = append(h.spans, attr.Span{
			Start: h.idx.Rune(start),
			End:   h.idx.Rune(end),
			Attrs: style(r.Color),
		})
	}
	return kept
}
