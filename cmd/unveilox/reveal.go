// ABOUTME: The typewriter and tui actions: look up the writing, then run the reveal engine
// ABOUTME: Lookup and theme errors surface before the terminal is touched

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"

	"github.com/mauromedda/unveilox/internal/action"
	"github.com/mauromedda/unveilox/internal/config"
	"github.com/mauromedda/unveilox/internal/log"
	"github.com/mauromedda/unveilox/internal/reveal"
)

var errNoTerminal = errors.New("reveals need an interactive terminal")

func (a *app) reveal(ctx context.Context, req action.Request, opts options) error {
	catalog, err := a.catalog()
	if err != nil {
		return fmt.Errorf("loading writings: %w", err)
	}
	poem, err := catalog.Get(req.Poem)
	if err != nil {
		return err
	}
	th, err := config.ResolveTheme(opts.theme)
	if err != nil {
		return err
	}

	var r reveal.Renderer
	switch req.Action {
	case action.Typewriter:
		r = reveal.NewTypewriter(poem.Text, req.Speed, th.Palette)
	case action.TUI:
		r = reveal.NewScreen(poem.Title, poem.Text, th.Palette)
	default:
		return fmt.Errorf("%w: %v is not a reveal", action.ErrInvalidAction, req.Action)
	}

	restoreLogs := a.quietLogs(opts)
	defer restoreLogs()

	t, w, err := a.open()
	if err != nil {
		return fmt.Errorf("%w: %w", errNoTerminal, err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			log.Debug("closing input watcher: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, revealSignals...)
	defer stop()

	log.Debug("reveal: %s %q at %s with theme %s", req.Action, poem.Name, req.Speed.Duration(), th.Name)
	engine := &reveal.Engine{Terminal: t, Watcher: w}
	out, err := engine.Run(ctx, r)
	if err != nil {
		return err
	}
	a.exitCode = out.ExitCode()
	return nil
}
