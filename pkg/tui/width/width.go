// ABOUTME: Grapheme-aware display width: one cluster at a time or a whole string
// ABOUTME: Clusters splits text into the units the typewriter emits per step

package width

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Clusters splits s into grapheme clusters. "\r\n" stays one cluster.
func Clusters(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// ClusterWidth returns the number of cells a single grapheme cluster occupies.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// VisibleWidth returns the display width of s. ANSI escape sequences count as zero.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}
