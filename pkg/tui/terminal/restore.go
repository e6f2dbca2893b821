// ABOUTME: ReleaseAll and RestoreOnPanic put every guarded terminal back on abnormal exit
// ABOUTME: RestoreOnPanic is deferred at the top of main

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// ReleaseAll releases every live guard and returns how many there were.
func ReleaseAll() int {
	guards := liveGuards()
	for _, g := range guards {
		g.Release()
	}
	return len(guards)
}

// RestoreOnPanic should be deferred at the top of main. On panic it releases
// all live guards, prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic() {
	r := recover()
	if r == nil {
		return
	}

	ReleaseAll()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
