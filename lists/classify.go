// Package lists implements the structural editing behavior of markdown list
// lines: continuation on newline, exit on backspace, indent and outdent, and
// renumbering of ordered runs.
//
// Handlers take the full document and selection in rune offsets and return
// the full replacement document. A handler that does not consume the key
// returns ok=false and the caller falls back to its default editing.
package lists

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind is the classification of one line.
type Kind uint8

const (
	None Kind = iota
	Unordered
	Ordered
	Checkbox
)

func (k Kind) String() string {
	switch k {
	case Unordered:
		return "unordered"
	case Ordered:
		return "ordered"
	case Checkbox:
		return "checkbox"
	default:
		return "none"
	}
}

// Item is the list context of one line.
type Item struct {
	Kind    Kind
	Indent  string
	Bullet  rune // '-', '*' or '+'; zero for numbered items
	Number  int  // numbered items only, including numbered checkboxes
	Checked bool
	Width   int // runes from the line start to Content
	Content string
}

// Numbered reports whether the item carries a "<digits>." marker.
func (it Item) Numbered() bool { return it.Kind != None && it.Bullet == 0 }

// Empty reports whether the line is a bare marker without content.
func (it Item) Empty() bool { return strings.TrimSpace(it.Content) == "" }

// Continuation returns the indentation and marker a new line following this
// item starts with. Checkboxes always reopen unchecked and numbers advance
// by one.
func (it Item) Continuation() string {
	var b strings.Builder
	b.WriteString(it.Indent)
	if it.Numbered() {
		b.WriteString(strconv.Itoa(it.Number + 1))
		b.WriteByte('.')
	} else {
		b.WriteRune(it.Bullet)
	}
	b.WriteByte(' ')
	if it.Kind == Checkbox {
		b.WriteString("[ ] ")
	}
	return b.String()
}

var (
	checkboxRe  = regexp.MustCompile(`^([ \t]*)(?:([-*+])|(\d{1,9})\.) \[( |x|X)\]( (.*))?$`)
	orderedRe   = regexp.MustCompile(`^([ \t]*)(\d{1,9})\.[ \t](.*)$`)
	unorderedRe = regexp.MustCompile(`^([ \t]*)([-*+])[ \t](.*)$`)
	ruleRe      = regexp.MustCompile(`^[ \t]{0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
)

// Classify derives the list context of a single line (without its newline).
func Classify(line string) Item {
	if m := checkboxRe.FindStringSubmatch(line); m != nil {
		it := Item{Kind: Checkbox, Indent: m[1], Checked: m[4] != " ", Content: m[6]}
		if m[2] != "" {
			it.Bullet = rune(m[2][0])
		} else {
			it.Number, _ = strconv.Atoi(m[3])
		}
		it.Width = utf8.RuneCountInString(line) - utf8.RuneCountInString(it.Content)
		return it
	}
	if ruleRe.MatchString(line) {
		return Item{}
	}
	if m := orderedRe.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[2])
		return Item{
			Kind:    Ordered,
			Indent:  m[1],
			Number:  n,
			Width:   utf8.RuneCountInString(line) - utf8.RuneCountInString(m[3]),
			Content: m[3],
		}
	}
	if m := unorderedRe.FindStringSubmatch(line); m != nil {
		return Item{
			Kind:    Unordered,
			Indent:  m[1],
			Bullet:  rune(m[2][0]),
			Width:   utf8.RuneCountInString(line) - utf8.RuneCountInString(m[3]),
			Content: m[3],
		}
	}
	return Item{}
}

// depth measures indentation in columns with tabs counted as tabWidth.
func depth(indent string) int {
	d := 0
	for _, r := range indent {
		if r == '\t' {
			d += tabWidth
		} else {
			d++
		}
	}
	return d
}

const tabWidth = 4
