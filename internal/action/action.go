// ABOUTME: Action is the closed set of things one invocation can do
// ABOUTME: Resolve turns positional args plus a speed into a validated Request

package action

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mauromedda/unveilox/internal/poems"
	"github.com/mauromedda/unveilox/internal/speed"
)

// ErrInvalidAction is returned for unknown actions or malformed argument lists.
var ErrInvalidAction = errors.New("invalid action")

// Action enumerates the supported invocations.
type Action int

const (
	Help Action = iota
	List
	Typewriter
	TUI
)

var actionNames = [...]string{
	Help:       "help",
	List:       "list",
	Typewriter: "typewriter",
	TUI:        "tui",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Names returns the accepted action words in declaration order.
func Names() []string {
	return slices.Clone(actionNames[:])
}

// Parse matches raw against the action words, ignoring case and surrounding space.
func Parse(raw string) (Action, error) {
	word := strings.TrimSpace(raw)
	for i, name := range actionNames {
		if strings.EqualFold(word, name) {
			return Action(i), nil
		}
	}
	if word == "" {
		return 0, fmt.Errorf("%w: action must not be empty", ErrInvalidAction)
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidAction, word, strings.Join(actionNames[:], ", "))
}

// Request is a fully validated invocation.
type Request struct {
	Action Action
	Speed  speed.Setting
	// Poem is set for Typewriter and TUI.
	Poem poems.Name
	// Pattern is the optional glob filter for List.
	Pattern string
}

// Resolve validates positional arguments. No arguments means Help.
func Resolve(args []string, s speed.Setting) (Request, error) {
	if len(args) == 0 {
		return Request{Action: Help, Speed: s}, nil
	}

	a, err := Parse(args[0])
	if err != nil {
		return Request{}, err
	}
	rest := args[1:]
	req := Request{Action: a, Speed: s}

	switch a {
	case Help:
		if len(rest) > 0 {
			return Request{}, fmt.Errorf("%w: help takes no arguments", ErrInvalidAction)
		}
	case List:
		if len(rest) > 1 {
			return Request{}, fmt.Errorf("%w: list takes at most one pattern", ErrInvalidAction)
		}
		if len(rest) == 1 {
			req.Pattern = strings.TrimSpace(rest[0])
		}
	case Typewriter, TUI:
		if len(rest) > 1 {
			return Request{}, fmt.Errorf("%w: %s takes exactly one writing name", ErrInvalidAction, a)
		}
		raw := ""
		if len(rest) == 1 {
			raw = rest[0]
		}
		name, err := poems.ParseName(raw)
		if err != nil {
			return Request{}, fmt.Errorf("%s: %w", a, err)
		}
		req.Poem = name
	}
	return req, nil
}
