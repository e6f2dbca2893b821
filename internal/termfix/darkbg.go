// ABOUTME: Pre-sets the lipgloss dark background so no OSC colour query is ever sent
// ABOUTME: Imported (with _) by main before anything renders with lipgloss or glamour

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// lipgloss and glamour query the background with OSC 11 the first
	// time HasDarkBackground runs. In raw mode the reply would arrive on
	// stdin and be decoded as keystrokes by the input watcher. With an
	// explicit value set, the sync.Once that sends the query is skipped.
	lipgloss.SetHasDarkBackground(true)
}
