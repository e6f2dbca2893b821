// ABOUTME: Source is a byte stream that can be read with a bounded wait
// ABOUTME: ReaderSource adapts any io.Reader through a background read loop

package input

import (
	"io"
	"sync"
	"time"
)

const readBufSize = 256

// Source supplies raw input bytes to a Watcher.
type Source interface {
	// ReadTimeout reads into p, waiting at most timeout. It returns 0, nil
	// when nothing arrived in time and io.EOF once the input has ended.
	ReadTimeout(p []byte, timeout time.Duration) (int, error)
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// ReaderSource turns a blocking io.Reader into a Source. A goroutine reads
// ahead; after Close it exits as soon as its pending Read returns.
type ReaderSource struct {
	ch   chan readResult
	done chan struct{}
	once sync.Once

	rest []byte
	err  error
}

// NewReaderSource starts reading r in the background.
func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{
		ch:   make(chan readResult, 16),
		done: make(chan struct{}),
	}
	go s.readLoop(r)
	return s
}

func (s *ReaderSource) readLoop(r io.Reader) {
	defer close(s.ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := r.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case s.ch <- readResult{data: data}:
			case <-s.done:
				return
			}
		}
		if err != nil {
			select {
			case s.ch <- readResult{err: err}:
			case <-s.done:
			}
			return
		}
	}
}

// ReadTimeout implements Source.
func (s *ReaderSource) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	if len(s.rest) > 0 {
		return s.take(p), nil
	}
	if s.err != nil {
		return 0, s.err
	}

	var res readResult
	var ok bool
	if timeout <= 0 {
		select {
		case res, ok = <-s.ch:
		default:
			return 0, nil
		}
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case res, ok = <-s.ch:
		case <-timer.C:
			return 0, nil
		}
	}

	switch {
	case !ok:
		s.err = io.EOF
		return 0, s.err
	case res.err != nil:
		s.err = res.err
		return 0, s.err
	}
	s.rest = res.data
	return s.take(p), nil
}

func (s *ReaderSource) take(p []byte) int {
	n := copy(p, s.rest)
	s.rest = s.rest[n:]
	return n
}

// Close stops the read loop. The underlying reader is not closed.
func (s *ReaderSource) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}
