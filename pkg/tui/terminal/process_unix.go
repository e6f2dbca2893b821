// ABOUTME: Unix SIGWINCH handling for ProcessTerminal resize events
// ABOUTME: One goroutine per registration; stop unsubscribes and waits for it to exit

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func (t *ProcessTerminal) startResizeListener(fn func(width, height int)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case <-sigCh:
				w, h, err := t.Size()
				if err != nil || w <= 0 || h <= 0 {
					continue
				}
				fn(w, h)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(stopCh)
			<-doneCh
		})
	}
}
