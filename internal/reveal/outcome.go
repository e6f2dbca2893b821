// ABOUTME: Outcome is how a reveal ended; ExitCode maps it to the process status
// ABOUTME: User cancellation is a normal exit, a signal is 128+SIGINT

package reveal

import "fmt"

// Outcome is the terminal result of a reveal.
type Outcome int

const (
	Completed Outcome = iota
	CancelledByUser
	CancelledBySignal
)

var outcomeNames = [...]string{
	Completed:         "completed",
	CancelledByUser:   "cancelled by user",
	CancelledBySignal: "cancelled by signal",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// ExitCode returns the process exit status for o.
func (o Outcome) ExitCode() int {
	switch o {
	case Completed, CancelledByUser:
		return 0
	case CancelledBySignal:
		return 130
	}
	return 1
}
