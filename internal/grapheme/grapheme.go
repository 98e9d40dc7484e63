// Package grapheme answers user-perceived character questions about text:
// how many clusters it holds, which cluster sits at an index, and how wide
// it renders in a terminal.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// At returns the cluster at index i, or false when i is out of range.
func At(text string, i int) (string, bool) {
	if i < 0 || text == "" {
		return "", false
	}
	g := uniseg.NewGraphemes(text)
	for n := 0; g.Next(); n++ {
		if n == i {
			return g.Str(), true
		}
	}
	return "", false
}

// Width returns the cell width of text. Clusters runewidth reports as
// zero-width fall back to uniseg's estimate.
func Width(text string) int {
	w := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w > 0 {
		return w
	}
	return max(uniseg.StringWidth(cluster), 0)
}
