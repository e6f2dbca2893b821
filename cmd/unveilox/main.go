// ABOUTME: CLI entry point for unveilox with terminal crash recovery
// ABOUTME: Builds the app over the real stdio and exits with the reveal's status

package main

import (
	"context"
	"os"

	// termfix must run its init before anything renders with lipgloss or
	// glamour, so no OSC background query is written while the terminal is raw.
	_ "github.com/mauromedda/unveilox/internal/termfix"

	"github.com/mauromedda/unveilox/internal/poems"
	"github.com/mauromedda/unveilox/pkg/tui/input"
	"github.com/mauromedda/unveilox/pkg/tui/terminal"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	defer terminal.RestoreOnPanic()

	a := &app{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		isTTY:     term.IsTerminal(int(os.Stdout.Fd())),
		stderrTTY: term.IsTerminal(int(os.Stderr.Fd())),
		catalog:   poems.Default,
		open:      openStdio,
	}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

// openStdio wires the process terminal to a watcher over stdin.
func openStdio() (terminal.Terminal, watcher, error) {
	t := terminal.Stdio()
	if !t.IsTerminal() {
		return nil, nil, terminal.ErrNotTerminal
	}
	w := input.NewWatcher(input.ForFile(t.Input()), input.WithResize(t))
	return t, w, nil
}
