// ABOUTME: Normalize prepares bundled text for terminal reveal
// ABOUTME: NFC composition, LF line endings, tab expansion, control stripping, trailing trim

package poems

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const tabWidth = 4

// Normalize returns text in the form the reveal engine expects: NFC, LF-only
// line endings, no tabs or control characters, no trailing whitespace per line
// and no trailing blank lines.
func Normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(cleanLine(line), unicode.IsSpace)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func cleanLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		switch {
		case r == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case unicode.IsControl(r):
			// Dropped: a stray ESC or BEL would be interpreted by the terminal.
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
