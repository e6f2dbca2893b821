// ABOUTME: Word wrapping of plain text to a cell width, grapheme aware
// ABOUTME: Breaks at the last space that fits; words wider than the line are split

package width

import "strings"

// Wrap breaks s into lines no wider than maxWidth cells. Existing newlines are
// kept. Leading indentation survives; the space a line breaks on is dropped.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(para, maxWidth)...)
	}
	return out
}

func wrapLine(line string, maxWidth int) []string {
	if VisibleWidth(line) <= maxWidth {
		return []string{line}
	}

	var lines []string
	clusters := Clusters(line)
	start := 0
	for start < len(clusters) {
		w := 0
		end := start
		lastSpace := -1
		for end < len(clusters) {
			cw := ClusterWidth(clusters[end])
			if w+cw > maxWidth {
				break
			}
			if clusters[end] == " " && end > start {
				lastSpace = end
			}
			w += cw
			end++
		}

		if end == len(clusters) {
			lines = append(lines, strings.Join(clusters[start:end], ""))
			break
		}
		if end == start {
			// A single cluster wider than the line; emit it alone.
			end = start + 1
		} else if lastSpace > start {
			end = lastSpace
		}
		lines = append(lines, strings.Join(clusters[start:end], ""))

		start = end
		for start < len(clusters) && clusters[start] == " " {
			start++
		}
	}
	return lines
}
