// ABOUTME: Signals that interrupt a reveal where only os.Interrupt is portable
// ABOUTME: Counterpart of signals_unix.go

//go:build !unix

package main

import "os"

var revealSignals = []os.Signal{os.Interrupt}
