// ABOUTME: Resize stub for platforms without SIGWINCH
// ABOUTME: The reveal keeps its starting size there

//go:build !unix

package terminal

// startResizeListener is a no-op without SIGWINCH.
func (t *ProcessTerminal) startResizeListener(_ func(width, height int)) (stop func()) {
	return func() {}
}
