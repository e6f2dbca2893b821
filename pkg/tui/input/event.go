// ABOUTME: Event is what a single Watcher.Poll observed: a key, a resize, a timeout, or the end
// ABOUTME: Interrupt means the caller's context ended; Error carries the input source failure

package input

import (
	"fmt"

	"github.com/mauromedda/unveilox/pkg/tui/key"
)

// EventType discriminates Event.
type EventType int

const (
	EventTimeout EventType = iota
	EventKey
	EventResize
	EventInterrupt
	EventError
)

var eventTypeNames = [...]string{
	EventTimeout:   "timeout",
	EventKey:       "key",
	EventResize:    "resize",
	EventInterrupt: "interrupt",
	EventError:     "error",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return fmt.Sprintf("EventType(%d)", int(t))
	}
	return eventTypeNames[t]
}

// Event is the result of one Poll.
type Event struct {
	Type EventType
	// Key is set for EventKey.
	Key key.Key
	// Width and Height are set for EventResize.
	Width, Height int
	// Err is set for EventError; io.EOF when input ended.
	Err error
}

// IsCancel reports whether the event is a key that asks to stop.
func (e Event) IsCancel() bool {
	return e.Type == EventKey && e.Key.IsCancel()
}

func (e Event) String() string {
	switch e.Type {
	case EventKey:
		return "key " + e.Key.String()
	case EventResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	case EventError:
		return fmt.Sprintf("error %v", e.Err)
	default:
		return e.Type.String()
	}
}
