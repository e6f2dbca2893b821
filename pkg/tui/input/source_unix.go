// ABOUTME: FdSource reads a terminal file descriptor with poll(2) so no read outlives its timeout
// ABOUTME: Used for stdin in raw mode; nothing is left blocked after the reveal returns

//go:build unix

package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// FdSource reads directly from a file descriptor.
type FdSource struct {
	fd int
}

// NewFdSource returns a Source reading f's descriptor. f is not closed by it.
func NewFdSource(f *os.File) *FdSource {
	return &FdSource{fd: int(f.Fd())}
}

// ReadTimeout implements Source.
func (s *FdSource) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	ms := int(timeout / time.Millisecond)
	if timeout > 0 && ms == 0 {
		ms = 1
	}

	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, fmt.Errorf("polling input: %w", err)
	}
	if n == 0 {
		return 0, nil
	}
	if fds[0].Revents&unix.POLLNVAL != 0 {
		return 0, fmt.Errorf("polling input: %w", os.ErrClosed)
	}

	r, err := unix.Read(s.fd, p)
	switch {
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("reading input: %w", err)
	case r == 0:
		return 0, io.EOF
	}
	return r, nil
}

// ForFile returns the best Source for f on this platform.
func ForFile(f *os.File) Source {
	return NewFdSource(f)
}
