// ABOUTME: Guard is exclusive, release-once ownership of a terminal's raw mode and alt screen
// ABOUTME: Acquire rolls back on partial failure; Release restores in reverse and never fails

package terminal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mauromedda/unveilox/internal/log"
)

var (
	// ErrAcquisitionFailed wraps any failure while switching modes on.
	ErrAcquisitionFailed = errors.New("terminal acquisition failed")
	// ErrBusy is returned when the terminal already has a live guard.
	ErrBusy = errors.New("terminal is already guarded")
)

// Mode selects which terminal properties a guard owns.
type Mode uint8

const (
	ModeRaw Mode = 1 << iota
	ModeAltScreen

	ModeBoth = ModeRaw | ModeAltScreen
)

func (m Mode) String() string {
	var parts []string
	if m&ModeRaw != 0 {
		parts = append(parts, "raw")
	}
	if m&ModeAltScreen != 0 {
		parts = append(parts, "alt-screen")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

var (
	registryMu sync.Mutex
	registry   = make(map[Terminal]*Guard)
)

// Guard owns the requested modes of one Terminal until Release.
// The cursor is hidden for the guard's lifetime.
type Guard struct {
	term     Terminal
	mode     Mode
	once     sync.Once
	released atomic.Bool

	// Steps that took effect, so a partial acquisition can be undone.
	raw    bool
	alt    bool
	cursor bool
}

// Acquire switches t into mode m and returns the owning guard. It fails fast
// with ErrBusy while another guard on t is live. On any other failure the
// steps already taken are undone and the error wraps ErrAcquisitionFailed.
func Acquire(t Terminal, m Mode) (*Guard, error) {
	if m&ModeBoth == 0 {
		return nil, fmt.Errorf("%w: no mode requested", ErrAcquisitionFailed)
	}

	g := &Guard{term: t, mode: m}

	registryMu.Lock()
	if _, busy := registry[t]; busy {
		registryMu.Unlock()
		return nil, ErrBusy
	}
	registry[t] = g
	registryMu.Unlock()

	if err := g.enter(); err != nil {
		g.restore()
		g.unregister()
		return nil, fmt.Errorf("%w: %w", ErrAcquisitionFailed, err)
	}

	log.Debug("terminal: acquired %s", m)
	return g, nil
}

// Mode returns the modes this guard owns.
func (g *Guard) Mode() Mode {
	return g.mode
}

// Live reports whether Release has not run yet.
func (g *Guard) Live() bool {
	return !g.released.Load()
}

// Release restores the terminal. Only the first call does anything; it is
// safe to defer and to call again explicitly. Failures are logged, not returned.
func (g *Guard) Release() {
	g.once.Do(func() {
		g.restore()
		g.released.Store(true)
		g.unregister()
		log.Debug("terminal: released %s", g.mode)
	})
}

func (g *Guard) enter() error {
	if g.mode&ModeRaw != 0 {
		if err := g.term.EnterRawMode(); err != nil {
			return err
		}
		g.raw = true
	}
	if g.mode&ModeAltScreen != 0 {
		g.alt = true
		if _, err := g.term.Write([]byte(seqAltScreenEnter)); err != nil {
			return fmt.Errorf("entering alternate screen: %w", err)
		}
	}
	g.cursor = true
	if _, err := g.term.Write([]byte(seqCursorHide)); err != nil {
		return fmt.Errorf("hiding cursor: %w", err)
	}
	return nil
}

// restore undoes enter in reverse order, attempting every step.
func (g *Guard) restore() {
	var errs []error
	if g.cursor {
		if _, err := g.term.Write([]byte(seqResetStyle + seqCursorShow)); err != nil {
			errs = append(errs, fmt.Errorf("showing cursor: %w", err))
		}
		g.cursor = false
	}
	if g.alt {
		if _, err := g.term.Write([]byte(seqAltScreenExit)); err != nil {
			errs = append(errs, fmt.Errorf("leaving alternate screen: %w", err))
		}
		g.alt = false
	}
	if g.raw {
		if err := g.term.ExitRawMode(); err != nil {
			errs = append(errs, err)
		}
		g.raw = false
	}
	if err := errors.Join(errs...); err != nil {
		log.Debug("terminal: restore incomplete: %v", err)
	}
}

func (g *Guard) unregister() {
	registryMu.Lock()
	defer registryMu.Unlock()

	if registry[g.term] == g {
		delete(registry, g.term)
	}
}

// liveGuards returns a snapshot of every guard not yet released.
func liveGuards() []*Guard {
	registryMu.Lock()
	defer registryMu.Unlock()

	out := make([]*Guard, 0, len(registry))
	for _, g := range registry {
		out = append(out, g)
	}
	return out
}
