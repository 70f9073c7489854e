package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// clusterWidth is the number of terminal cells a grapheme cluster occupies
// when drawn at column col. Tabs run to the next tab stop.
func clusterWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(col, tabWidth)
	}
	// runewidth reports zero for some emoji sequences that uniseg measures.
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	return uniseg.StringWidth(cluster)
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - col%tabWidth
}
