// Package grapheme splits text into user-perceived characters while keeping
// track of the rune offsets the styling maps are indexed by.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster of a text.
type Cluster struct {
	Text   string
	Offset int // rune offset of the first rune
	Runes  int
}

// Clusters returns the grapheme clusters of text in visual order, with
// offsets counted from base.
func Clusters(text string, base int) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	off := base
	for g.Next() {
		n := len(g.Runes())
		out = append(out, Cluster{Text: g.Str(), Offset: off, Runes: n})
		off += n
	}
	return out
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
