package codeblock

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/internal/scan"
)

// Rule is one pattern and the color its match (or submatch Group) receives.
// Keep, when set, drops matches after the non-overlapping scan; a dropped
// match still consumes its text.
type Rule struct {
	Pattern *regexp.Regexp
	Group   int
	Color   attr.Color
	Keep    scan.Guard
}

// Language is the rule table for one fenced-block language.
type Language struct {
	Name string

	keywords *regexp.Regexp
	kwSet    map[string]bool
	types    *regexp.Regexp

	Strings  []Rule
	Comments []Rule
	Extras   []Rule

	// NoCalls suppresses call-site identifier coloring for data-only
	// languages (JSON, YAML, CSS).
	NoCalls bool
}

func newLanguage(name string) *Language {
	return &Language{Name: name, kwSet: map[string]bool{}}
}

func (l *Language) withKeywords(words ...string) *Language {
	for _, w := range words {
		l.kwSet[w] = true
	}
	l.keywords = wordSet(words)
	return l
}

func (l *Language) withTypes(words ...string) *Language {
	l.types = wordSet(words)
	return l
}

func (l *Language) withStrings(patterns ...string) *Language {
	for _, p := range patterns {
		l.Strings = append(l.Strings, Rule{Pattern: regexp.MustCompile(p), Color: attr.ColorString})
	}
	return l
}

// withFilteredString registers a string pattern whose matches keep filters.
func (l *Language) withFilteredString(pattern string, keep scan.Guard) *Language {
	l.Strings = append(l.Strings, Rule{Pattern: regexp.MustCompile(pattern), Color: attr.ColorString, Keep: keep})
	return l
}

func (l *Language) withComments(patterns ...string) *Language {
	for _, p := range patterns {
		l.Comments = append(l.Comments, Rule{Pattern: regexp.MustCompile(p), Color: attr.ColorComment})
	}
	return l
}

func (l *Language) withExtra(pattern string, group int, c attr.Color) *Language {
	l.Extras = append(l.Extras, Rule{Pattern: regexp.MustCompile(pattern), Group: group, Color: c})
	return l
}

func (l *Language) dataOnly() *Language {
	l.NoCalls = true
	return l
}

// IsKeyword reports whether word is in the language's keyword set.
func (l *Language) IsKeyword(word string) bool { return l.kwSet[word] }

func wordSet(words []string) *regexp.Regexp {
	if len(words) == 0 {
		return nil
	}
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

const (
	dqString     = `"(?:[^"\\\n]|\\.)*"`
	sqString     = `'(?:[^'\\\n]|\\.)*'`
	lineSlashes  = `//[^\n]*`
	blockSlashes = `/\*(?s:.*?)\*/`
	lineHash     = `#[^\n]*`
)
