// ABOUTME: Non-unix fallback: files are read through a ReaderSource
// ABOUTME: The read-ahead goroutine may outlive the watcher until the next key

//go:build !unix

package input

import "os"

// ForFile returns the best Source for f on this platform.
func ForFile(f *os.File) Source {
	return NewReaderSource(f)
}
