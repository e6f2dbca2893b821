// ABOUTME: Signals that interrupt a reveal on unix
// ABOUTME: SIGHUP covers a closed terminal window

//go:build unix

package main

import (
	"os"
	"syscall"
)

var revealSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
