package mdstyle

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Entry is one heading in the document outline.
type Entry struct {
	Level  int
	Text   string
	Offset int // rune offset of the heading line
}

var outlineParser = goldmark.New().Parser()

// Outline lists the ATX headings that the styler renders as headings, in
// document order. Headings inside code blocks or block quotes, setext
// headings and lines with seven or more '#' are not entries.
func Outline(text string) []Entry {
	src := []byte(text)
	doc := outlineParser.Parse(gtext.NewReader(src))

	var out []Entry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		first := lines.At(0)
		lineStart := strings.LastIndexByte(text[:first.Start], '\n') + 1
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}
		m := headingRe.FindStringSubmatch(text[lineStart:lineEnd])
		if m == nil || len(m[1]) != h.Level {
			return ast.WalkSkipChildren, nil
		}

		var b strings.Builder
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(src))
		}
		out = append(out, Entry{
			Level:  h.Level,
			Text:   strings.TrimSpace(b.String()),
			Offset: utf8.RuneCountInString(text[:lineStart]),
		})
		return ast.WalkSkipChildren, nil
	})
	return out
}
