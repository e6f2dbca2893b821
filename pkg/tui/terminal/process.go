// ABOUTME: ProcessTerminal implements Terminal over real file descriptors with golang.org/x/term
// ABOUTME: Stdio() is the shared stdin/stdout instance every reveal contends for

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on a non-tty input.
var ErrNotTerminal = errors.New("input is not a terminal")

// ProcessTerminal is a real terminal: raw mode is set on in, output goes to out.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

var stdio = sync.OnceValue(func() *ProcessTerminal {
	return NewProcessTerminal(os.Stdin, os.Stdout)
})

// Stdio returns the process-wide terminal backed by os.Stdin and os.Stdout.
func Stdio() *ProcessTerminal {
	return stdio()
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing to out.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// Input returns the file raw mode is applied to and keys are read from.
func (t *ProcessTerminal) Input() *os.File {
	return t.in
}

// IsTerminal reports whether both ends are attached to a tty.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// EnterRawMode switches the input to raw mode, saving the previous state.
// Calling it while already raw is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the state saved by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the output's dimensions in cells.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// OnResize calls fn with the new size after each resize until stop is called.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) (stop func()) {
	return t.startResizeListener(fn)
}
