// ABOUTME: Defines the Terminal interface for raw mode, size queries, output, and resize
// ABOUTME: Implementations must be pointer types; guards key their exclusivity on the value

package terminal

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, output writing, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	// OnResize registers fn for size changes until the returned stop is called.
	OnResize(fn func(width, height int)) (stop func())
}
