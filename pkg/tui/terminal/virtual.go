// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY
// ABOUTME: Captures output, tracks raw mode, alt screen, and cursor state, and injects failures

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

const (
	seqAltScreenEnter = "\x1b[?1049h"
	seqAltScreenExit  = "\x1b[?1049l"
	seqCursorHide     = "\x1b[?25l"
	seqCursorShow     = "\x1b[?25h"
	seqResetStyle     = "\x1b[0m"
)

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu           sync.Mutex
	buf          bytes.Buffer
	width        int
	height       int
	rawMode      bool
	altScreen    bool
	cursorHidden bool
	enterCount   int
	exitCount    int
	writes       int
	rawErr       error
	writeErr     error
	resizeFns    map[int]func(width, height int)
	nextResizeID int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:     width,
		height:    height,
		resizeFns: make(map[int]func(width, height int)),
	}
}

// EnterRawMode records a raw-mode entry, or fails if FailRawMode was set.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rawErr != nil {
		return v.rawErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Write appends data to the internal buffer and tracks mode sequences.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	v.writes++
	v.altScreen = lastToggle(p, seqAltScreenEnter, seqAltScreenExit, v.altScreen)
	v.cursorHidden = lastToggle(p, seqCursorHide, seqCursorShow, v.cursorHidden)

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize registers fn until the returned stop is called.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) (stop func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextResizeID
	v.nextResizeID++
	v.resizeFns[id] = fn
	return func() {
		v.mu.Lock()
		delete(v.resizeFns, id)
		v.mu.Unlock()
	}
}

// lastToggle returns the state implied by whichever of on/off appears last in p.
func lastToggle(p []byte, on, off string, current bool) bool {
	iOn := bytes.LastIndex(p, []byte(on))
	iOff := bytes.LastIndex(p, []byte(off))
	switch {
	case iOn > iOff:
		return true
	case iOff > iOn:
		return false
	}
	return current
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// InAltScreen reports whether the last alt-screen sequence written entered it.
func (v *VirtualTerminal) InAltScreen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.altScreen
}

// CursorHidden reports whether the last cursor sequence written hid it.
func (v *VirtualTerminal) CursorHidden() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cursorHidden
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// Writes returns how many writes succeeded.
func (v *VirtualTerminal) Writes() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writes
}

// ResizeListeners returns how many OnResize registrations are active.
func (v *VirtualTerminal) ResizeListeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.resizeFns)
}

// FailRawMode makes EnterRawMode return err; nil clears it.
func (v *VirtualTerminal) FailRawMode(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawErr = err
}

// FailWrites makes every later Write return err; nil clears it.
func (v *VirtualTerminal) FailWrites(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// SetSize updates the dimensions and invokes every registered resize callback.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fns := make([]func(int, int), 0, len(v.resizeFns))
	for _, fn := range v.resizeFns {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}
