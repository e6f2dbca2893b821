// ABOUTME: Watcher turns raw input bytes and resize notifications into one Event per Poll
// ABOUTME: Polls in short slices so context cancellation is seen within one slice

package input

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/mauromedda/unveilox/internal/log"
	"github.com/mauromedda/unveilox/pkg/tui/key"
	"github.com/mauromedda/unveilox/pkg/tui/terminal"
)

const (
	defaultSlice   = 25 * time.Millisecond
	defaultEscWait = 50 * time.Millisecond
)

// Option configures a Watcher.
type Option func(*Watcher)

// WithResize delivers t's size changes as EventResize.
func WithResize(t terminal.Terminal) Option {
	return func(w *Watcher) {
		w.stopResize = t.OnResize(w.notifyResize)
	}
}

// WithEscapeWait sets how long a lone ESC waits for a sequence tail.
func WithEscapeWait(d time.Duration) Option {
	return func(w *Watcher) { w.escWait = d }
}

// WithSlice sets the longest single read wait inside Poll.
func WithSlice(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.slice = d
		}
	}
}

// Watcher reads keys from a Source. It is not safe for concurrent Poll calls.
type Watcher struct {
	src     Source
	slice   time.Duration
	escWait time.Duration

	buf      []byte
	tmp      []byte
	escSince time.Time
	err      error

	resizeCh   chan struct{}
	sizeMu     sync.Mutex
	width      int
	height     int
	stopResize func()
	closeOnce  sync.Once
}

// NewWatcher returns a Watcher reading from src.
func NewWatcher(src Source, opts ...Option) *Watcher {
	w := &Watcher{
		src:      src,
		slice:    defaultSlice,
		escWait:  defaultEscWait,
		tmp:      make([]byte, readBufSize),
		resizeCh: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// notifyResize records the latest size; bursts collapse into one event.
func (w *Watcher) notifyResize(width, height int) {
	w.sizeMu.Lock()
	w.width, w.height = width, height
	w.sizeMu.Unlock()

	select {
	case w.resizeCh <- struct{}{}:
	default:
	}
}

// Poll waits up to timeout for the next event; a negative timeout waits until
// something happens. Already buffered keys come first, then context
// cancellation, then resizes, then new input.
func (w *Watcher) Poll(ctx context.Context, timeout time.Duration) Event {
	unbounded := timeout < 0
	deadline := time.Now().Add(timeout)
	for {
		if k, ok := w.decode(); ok {
			return Event{Type: EventKey, Key: k}
		}
		if ctx.Err() != nil {
			return Event{Type: EventInterrupt}
		}
		select {
		case <-w.resizeCh:
			w.sizeMu.Lock()
			ev := Event{Type: EventResize, Width: w.width, Height: w.height}
			w.sizeMu.Unlock()
			return ev
		default:
		}
		if w.err != nil && len(w.buf) == 0 {
			return Event{Type: EventError, Err: w.err}
		}

		now := time.Now()
		wait := w.slice
		if !unbounded {
			remaining := deadline.Sub(now)
			if remaining <= 0 {
				return Event{Type: EventTimeout}
			}
			wait = min(wait, remaining)
		}
		if !w.escSince.IsZero() {
			wait = max(min(wait, w.escSince.Add(w.escWait).Sub(now)), 0)
		}

		n, err := w.src.ReadTimeout(w.tmp, wait)
		if n > 0 {
			w.buf = append(w.buf, w.tmp[:n]...)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug("input: read failed: %v", err)
			}
			w.err = err
		}
	}
}

// decode takes one key off the front of the buffer if one is complete, or
// if a partial sequence has waited long enough.
func (w *Watcher) decode() (key.Key, bool) {
	if len(w.buf) == 0 {
		return key.Key{}, false
	}

	n, k, wait := key.Next(w.buf)
	if wait {
		if w.escSince.IsZero() {
			w.escSince = time.Now()
		}
		if w.err == nil && time.Since(w.escSince) < w.escWait {
			return key.Key{}, false
		}
		n, k = key.Flush(w.buf)
	}

	w.buf = w.buf[n:]
	w.escSince = time.Time{}
	return k, true
}

// Close stops resize notifications and the source, if it can be closed.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		if w.stopResize != nil {
			w.stopResize()
		}
		if c, ok := w.src.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}
