// Package scan holds the regexp plumbing shared by the styling passes:
// byte to rune offset translation and guarded matching, which stands in for
// the lookaround assertions RE2 does not support.
package scan

import (
	"regexp"
	"regexp/syntax"
	"sync"
	"unicode/utf8"
)

// Index translates byte offsets of one string into rune offsets.
type Index struct {
	runeAt []int
}

// NewIndex builds the translation table for s.
func NewIndex(s string) Index {
	runeAt := make([]int, len(s)+1)
	n := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		for j := 0; j < size; j++ {
			runeAt[i+j] = n
		}
		i += size
		n++
	}
	runeAt[len(s)] = n
	return Index{runeAt: runeAt}
}

// Rune returns the rune offset of byte offset b. Offsets inside a multi-byte
// sequence resolve to the rune that contains them.
func (x Index) Rune(b int) int {
	if len(x.runeAt) == 0 {
		return 0
	}
	if b < 0 {
		return 0
	}
	if b >= len(x.runeAt) {
		return x.runeAt[len(x.runeAt)-1]
	}
	return x.runeAt[b]
}

// Len returns the rune length of the indexed string.
func (x Index) Len() int { return x.Rune(len(x.runeAt) - 1) }

// Match is one regexp match as byte offsets: the whole match plus every
// submatch pair (-1 when a group did not participate).
type Match []int

// Group returns the byte range of submatch g, ok=false if it did not match.
func (m Match) Group(g int) (start, end int, ok bool) {
	if 2*g+1 >= len(m) || m[2*g] < 0 {
		return 0, 0, false
	}
	return m[2*g], m[2*g+1], true
}

// Guard vetoes a candidate match. s is the full subject; m holds absolute
// byte offsets.
type Guard func(s string, m Match) bool

// FindAll returns the non-overlapping matches of re in s. When guard rejects
// a candidate the search resumes one rune after the candidate's start, so a
// rejected match never hides a valid one that begins inside it. A resumed
// search still honours leading ^ and \b against the full subject.
func FindAll(re *regexp.Regexp, s string, guard Guard) []Match {
	if guard == nil {
		raw := re.FindAllStringSubmatchIndex(s, -1)
		out := make([]Match, len(raw))
		for i, m := range raw {
			out[i] = m
		}
		return out
	}

	var out []Match
	pos := 0
	for pos <= len(s) {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		m := make(Match, len(loc))
		for i, v := range loc {
			if v >= 0 {
				v += pos
			}
			m[i] = v
		}
		if startHolds(re, s, m[0]) && guard(s, m) {
			out = append(out, m)
			if m[1] > m[0] {
				pos = m[1]
				continue
			}
		}
		if m[0] >= len(s) {
			break
		}
		_, size := utf8.DecodeRuneInString(s[m[0]:])
		pos = m[0] + size
	}
	return out
}

var startConds sync.Map // *regexp.Regexp -> syntax.EmptyOp

// startHolds reports whether the zero-width assertions re requires at the
// start of every match (line start, word boundary) hold at byte offset i
// of the full subject s.
func startHolds(re *regexp.Regexp, s string, i int) bool {
	cond, ok := startConds.Load(re)
	if !ok {
		var op syntax.EmptyOp
		if parsed, err := syntax.Parse(re.String(), syntax.Perl); err == nil {
			if prog, err := syntax.Compile(parsed.Simplify()); err == nil {
				op = prog.StartCond()
			}
		}
		cond, _ = startConds.LoadOrStore(re, op)
	}
	need := cond.(syntax.EmptyOp)
	return need&^syntax.EmptyOpContext(Before(s, i), After(s, i)) == 0
}

// Before returns the rune immediately before byte offset i, or -1.
func Before(s string, i int) rune {
	if i <= 0 || i > len(s) {
		return -1
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

// After returns the rune starting at byte offset i, or -1.
func After(s string, i int) rune {
	if i < 0 || i >= len(s) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}
