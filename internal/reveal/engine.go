// ABOUTME: Engine runs one reveal: acquire the terminal, pace a Renderer against input, release
// ABOUTME: The guard is released on every path before Run returns, errors included

package reveal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/unveilox/internal/log"
	"github.com/mauromedda/unveilox/pkg/tui/input"
	"github.com/mauromedda/unveilox/pkg/tui/terminal"
)

// idleTimeout bounds each wait of a static renderer so interruption is noticed.
const idleTimeout = 250 * time.Millisecond

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Watcher is the input side of a reveal. *input.Watcher implements it.
type Watcher interface {
	Poll(ctx context.Context, timeout time.Duration) input.Event
}

// Renderer is a presentation strategy driven by Engine. Paced renderers
// (Interval > 0) get one Advance per elapsed interval until Done; static
// renderers draw in Start and Resize and wait for a cancel key.
type Renderer interface {
	// Mode is the terminal mode the renderer needs.
	Mode() terminal.Mode
	// Interval is the delay between Advance calls; zero means static.
	Interval() time.Duration
	Start(w io.Writer, width, height int) error
	Resize(w io.Writer, width, height int) error
	Advance(w io.Writer) error
	Done() bool
	// Cancelled is the outcome reported when a cancel key ends the reveal.
	Cancelled() Outcome
	// Finish runs once on a non-error exit, before the terminal is released.
	Finish(w io.Writer) error
}

// Engine drives Renderers on Terminal with events from Watcher.
type Engine struct {
	Terminal terminal.Terminal
	Watcher  Watcher
	// Now is the clock used for pacing; nil means time.Now.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Run performs one reveal. The Outcome is only meaningful when err is nil.
func (e *Engine) Run(ctx context.Context, r Renderer) (Outcome, error) {
	guard, err := terminal.Acquire(e.Terminal, r.Mode())
	if err != nil {
		return Completed, err
	}
	defer guard.Release()

	width, height, err := e.Terminal.Size()
	if err != nil || width <= 0 || height <= 0 {
		log.Debug("reveal: size unavailable (%v), using %dx%d", err, fallbackWidth, fallbackHeight)
		width, height = fallbackWidth, fallbackHeight
	}

	out, err := e.loop(ctx, r, width, height)
	if err != nil {
		return out, err
	}
	if err := r.Finish(e.Terminal); err != nil {
		return out, fmt.Errorf("finishing reveal: %w", err)
	}
	log.Debug("reveal: %s", out)
	return out, nil
}

func (e *Engine) loop(ctx context.Context, r Renderer, width, height int) (Outcome, error) {
	w := e.Terminal
	if err := r.Start(w, width, height); err != nil {
		return Completed, fmt.Errorf("starting reveal: %w", err)
	}

	interval := r.Interval()
	for !r.Done() {
		var deadline time.Time
		if interval > 0 {
			deadline = e.now().Add(interval)
		}

	wait:
		for {
			timeout := idleTimeout
			if interval > 0 {
				timeout = max(deadline.Sub(e.now()), 0)
			}

			ev := e.Watcher.Poll(ctx, timeout)
			switch ev.Type {
			case input.EventTimeout:
				if interval == 0 {
					continue
				}
				if err := r.Advance(w); err != nil {
					return Completed, fmt.Errorf("revealing: %w", err)
				}
				break wait
			case input.EventKey:
				if ev.Key.IsCancel() {
					return r.Cancelled(), nil
				}
			case input.EventResize:
				log.Debug("reveal: resize to %dx%d", ev.Width, ev.Height)
				if err := r.Resize(w, ev.Width, ev.Height); err != nil {
					return Completed, fmt.Errorf("redrawing after resize: %w", err)
				}
			case input.EventInterrupt:
				return CancelledBySignal, nil
			case input.EventError:
				return Completed, fmt.Errorf("reading input: %w", ev.Err)
			}
		}
	}
	return Completed, nil
}
