// Package ghost computes inline word completions from words already present
// in the document.
package ghost

import (
	"sort"
	"strings"
	"unicode"
)

// Suggestion is a suffix shown after the cursor without being part of the
// document.
type Suggestion struct {
	At     int // rune offset of the cursor
	Suffix string
}

type Options struct {
	// MinPrefix is the shortest word prefix that triggers a suggestion.
	// Zero means 2.
	MinPrefix int
}

func isWord(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

// Suggest returns the completion for the word ending at cursor. It requires
// the rune after the cursor, if any, to be a non-word rune and the word
// before it to be at least MinPrefix runes long.
//
// Candidates are the document's words (a letter followed by letters or
// digits) that start with the prefix ignoring case and are longer than it.
// The word under the cursor is excluded. The lexicographically smallest
// distinct candidate wins.
func Suggest(text string, cursor int, opt Options) (Suggestion, bool) {
	if opt.MinPrefix <= 0 {
		opt.MinPrefix = 2
	}
	rs := []rune(text)
	if cursor < 0 || cursor > len(rs) {
		return Suggestion{}, false
	}
	if cursor < len(rs) && isWord(rs[cursor]) {
		return Suggestion{}, false
	}
	start := cursor
	for start > 0 && isWord(rs[start-1]) {
		start--
	}
	if cursor-start < opt.MinPrefix {
		return Suggestion{}, false
	}
	prefix := rs[start:cursor]
	lower := strings.ToLower(string(prefix))

	seen := map[string]bool{}
	var cands []string
	for i := 0; i < len(rs); {
		if !unicode.IsLetter(rs[i]) || (i > 0 && isWord(rs[i-1])) {
			i++
			continue
		}
		j := i
		for j < len(rs) && isWord(rs[j]) {
			j++
		}
		if i != start && j-i > len(prefix) {
			w := string(rs[i:j])
			if strings.HasPrefix(strings.ToLower(w), lower) && !seen[w] {
				seen[w] = true
				cands = append(cands, w)
			}
		}
		i = j
	}
	if len(cands) == 0 {
		return Suggestion{}, false
	}
	sort.Strings(cands)
	return Suggestion{At: cursor, Suffix: string([]rune(cands[0])[len(prefix):])}, true
}
