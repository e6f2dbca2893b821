// ABOUTME: ANSI escape sequence stripping
// ABOUTME: Delegates to the x/ansi parser so CSI, OSC, and ST-terminated strings all drop out

package width

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return ansi.Strip(s)
}
