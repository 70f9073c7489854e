package mdstyle

import (
	"regexp"
	"unicode"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/checkbox"
	"github.com/iw2rmb/quill/codeblock"
	"github.com/iw2rmb/quill/internal/scan"
)

var (
	headingRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.*)$`)
	fenceRe   = regexp.MustCompile("(?m)^```([A-Za-z0-9_+#.-]*)[ \\t]*\\n((?s:.*?))^```[ \\t]*$")
	quoteRe   = regexp.MustCompile(`(?m)^((?:>[ \t]?)+)(.*)$`)

	boldItalicStarRe  = regexp.MustCompile(`\*\*\*([^\n]+?)\*\*\*`)
	boldItalicUnderRe = regexp.MustCompile(`___([^\n]+?)___`)
	boldStarRe        = regexp.MustCompile(`\*\*([^\n]+?)\*\*`)
	boldUnderRe       = regexp.MustCompile(`__([^\n]+?)__`)
	italicStarRe      = regexp.MustCompile(`\*([^*\n]+?)\*`)
	italicUnderRe     = regexp.MustCompile(`_([^_\n]+?)_`)
	strikeRe          = regexp.MustCompile(`~~([^\n]+?)~~`)
	codeRe            = regexp.MustCompile("`([^`\\n]+)`")

	linkRe   = regexp.MustCompile(`(!?)\[([^\]\n]*)\]\(([^)\n]*)\)`)
	hrRe     = regexp.MustCompile(`(?m)^[ \t]{0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
	markerRe = regexp.MustCompile(`(?m)^[ \t]*([-*+]|\d+\.)[ \t]`)
)

// Input is everything one styling cycle depends on.
type Input struct {
	Text        string
	Query       string
	ActiveMatch int
	Zoom        float64 // zero means 1
}

// Range is a half-open rune range.
type Range struct {
	Start int
	End   int
}

// Result is the output of one styling cycle.
type Result struct {
	Map        *attr.Map
	Matches    []Range
	Active     int // index into Matches, -1 without a query hit
	Checkboxes []checkbox.Token
}

// ScrollTo returns the active search match the view should bring into sight.
func (r Result) ScrollTo() (Range, bool) {
	if r.Active < 0 || r.Active >= len(r.Matches) {
		return Range{}, false
	}
	return r.Matches[r.Active], true
}

// Styler runs the styling passes. It holds configuration only and may be
// shared.
type Styler struct {
	opt Options
}

func New(opt Options) *Styler {
	return &Styler{opt: opt.withDefaults()}
}

// Style computes the attribute map for in.Text.
func (s *Styler) Style(in Input) Result {
	zoom := in.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	p := &pass{
		text: in.Text,
		idx:  scan.NewIndex(in.Text),
		size: s.opt.BaseSize * zoom,
	}
	p.m = attr.NewMap(p.idx.Len(), p.base())

	s.blocks(p)
	inlineSpans(p)
	toks := structural(p)
	matches, active := search(p, in.Query, in.ActiveMatch)

	return Result{Map: p.m, Matches: matches, Active: active, Checkboxes: toks}
}

type pass struct {
	text string
	idx  scan.Index
	size float64
	m    *attr.Map
}

func (p *pass) base() attr.Attrs {
	return attr.Attrs{}.
		WithWeight(attr.WeightRegular).
		WithSlant(attr.SlantUpright).
		WithSize(p.size).
		WithMono(false).
		WithFg(attr.ColorBase).
		WithBg(attr.ColorNone).
		WithStrike(false).
		WithUnderline(false).
		WithHidden(false)
}

// bytes applies a over the byte range [start, end).
func (p *pass) bytes(start, end int, a attr.Attrs) {
	if end <= start {
		return
	}
	p.m.Apply(attr.Span{Start: p.idx.Rune(start), End: p.idx.Rune(end), Attrs: a})
}

func (p *pass) group(m scan.Match, g int, a attr.Attrs) {
	if start, end, ok := m.Group(g); ok {
		p.bytes(start, end, a)
	}
}

func (s *Styler) blocks(p *pass) {
	for _, m := range scan.FindAll(headingRe, p.text, nil) {
		hs, he, _ := m.Group(1)
		h := s.opt.Headings[he-hs-1]
		p.bytes(m[0], m[1], attr.Attrs{}.WithSize(p.size*h.Scale))
		p.group(m, 1, attr.Dim())
		p.group(m, 2, attr.Attrs{}.WithWeight(h.Weight))
	}

	for _, m := range scan.FindAll(fenceRe, p.text, nil) {
		bodyStart, bodyEnd, _ := m.Group(2)
		p.bytes(m[0], m[1], attr.Attrs{}.
			WithBg(attr.ColorCodeBg).
			WithMono(true).
			WithSize(p.size).
			WithWeight(attr.WeightRegular).
			WithSlant(attr.SlantUpright))
		p.bytes(m[0], bodyStart, attr.Dim())
		p.bytes(bodyEnd, m[1], attr.Dim())

		tagStart, tagEnd, _ := m.Group(1)
		off := p.idx.Rune(bodyStart)
		for _, sp := range codeblock.Highlight(p.text[bodyStart:bodyEnd], p.text[tagStart:tagEnd]) {
			p.m.Apply(sp.Shift(off))
		}
	}

	for _, m := range scan.FindAll(quoteRe, p.text, nil) {
		p.group(m, 1, attr.Dim())
		p.group(m, 2, attr.Italic().WithFg(attr.ColorQuote))
	}
}

// delimited styles every match of re: markers around submatch 1 are dimmed
// and the content receives a.
func delimited(p *pass, re *regexp.Regexp, guard scan.Guard, a attr.Attrs) {
	for _, m := range scan.FindAll(re, p.text, guard) {
		cs, ce, _ := m.Group(1)
		p.bytes(m[0], cs, attr.Dim())
		p.bytes(ce, m[1], attr.Dim())
		p.bytes(cs, ce, a)
	}
}

// flanked rejects a match whose delimiter run continues past either end, so
// "*" never fires on one star of "**" and "**" never on two of "***". The
// content must not start or end with whitespace, and underscores must not
// touch a word character, which keeps snake_case identifiers plain.
func flanked(c rune) scan.Guard {
	return func(s string, m scan.Match) bool {
		before, after := scan.Before(s, m[0]), scan.After(s, m[1])
		if before == c || after == c {
			return false
		}
		cs, ce, _ := m.Group(1)
		if unicode.IsSpace(scan.After(s, cs)) || unicode.IsSpace(scan.Before(s, ce)) {
			return false
		}
		if c == '_' && (isWord(before) || isWord(after)) {
			return false
		}
		return true
	}
}

func isWord(r rune) bool {
	return r >= 0 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func inlineSpans(p *pass) {
	boldItalic := attr.Bold().WithSlant(attr.SlantItalic)
	delimited(p, boldItalicStarRe, flanked('*'), boldItalic)
	delimited(p, boldItalicUnderRe, flanked('_'), boldItalic)
	delimited(p, boldStarRe, flanked('*'), attr.Bold())
	delimited(p, boldUnderRe, flanked('_'), attr.Bold())
	delimited(p, italicStarRe, flanked('*'), attr.Italic())
	delimited(p, italicUnderRe, flanked('_'), attr.Italic())
	delimited(p, strikeRe, nil, attr.Attrs{}.WithStrike(true))
	delimited(p, codeRe, nil, attr.Attrs{}.
		WithMono(true).
		WithFg(attr.ColorCode).
		WithBg(attr.ColorCodeBg))
}

func structural(p *pass) []checkbox.Token {
	for _, m := range scan.FindAll(linkRe, p.text, nil) {
		ts, te, _ := m.Group(2)
		p.bytes(m[0], ts, attr.Dim())
		p.bytes(te, m[1], attr.Dim())
		if bs, be, _ := m.Group(1); be == bs {
			p.bytes(ts, te, attr.Attrs{}.WithUnderline(true).WithFg(attr.ColorLink))
		}
	}

	for _, m := range scan.FindAll(hrRe, p.text, nil) {
		p.bytes(m[0], m[1], attr.Dim().WithStrike(true))
	}

	notRule := func(s string, m scan.Match) bool {
		end := m[0]
		for end < len(s) && s[end] != '\n' {
			end++
		}
		return !hrRe.MatchString(s[m[0]:end])
	}
	for _, m := range scan.FindAll(markerRe, p.text, notRule) {
		p.group(m, 1, attr.Attrs{}.WithFg(attr.ColorMarker))
	}

	toks := checkbox.Scan(p.text)
	for _, t := range toks {
		p.m.Apply(attr.Span{Start: t.Open, End: t.Close + 1, Attrs: attr.Attrs{}.WithHidden(true)})
		if t.Checked {
			p.m.Apply(attr.Span{Start: t.Body(), End: t.LineEnd, Attrs: attr.Dim().WithStrike(true)})
		}
	}
	return toks
}
