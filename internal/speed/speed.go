// ABOUTME: Setting is the clamped milliseconds-per-step pacing value for reveals
// ABOUTME: Parse rejects non-digit tokens; out-of-range numbers are clamped to [Min, Max]

package speed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	Min           = 1
	Max           = 1000
	DefaultMillis = 25
)

// ErrInvalidSpeed is returned when a speed token is not a non-negative integer.
var ErrInvalidSpeed = errors.New("invalid speed")

// Setting is an immutable pacing value, always within [Min, Max] milliseconds.
// The zero value behaves as the default speed.
type Setting struct {
	ms int
}

// New clamps ms into [Min, Max].
func New(ms int) Setting {
	return Setting{ms: clamp(ms)}
}

// Default returns the speed used when none is given.
func Default() Setting {
	return Setting{ms: DefaultMillis}
}

// Parse converts a raw token into a Setting. Surrounding whitespace is ignored.
func Parse(raw string) (Setting, error) {
	token := strings.TrimSpace(raw)
	if !isDigits(token) {
		return Setting{}, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidSpeed, raw)
	}

	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		// Only range errors are possible for an all-digit token.
		return Setting{ms: Max}, nil
	}
	if n > Max {
		return Setting{ms: Max}, nil
	}
	return New(int(n)), nil
}

// Millis returns the pacing value in milliseconds.
func (s Setting) Millis() int {
	if s.ms == 0 {
		return DefaultMillis
	}
	return s.ms
}

// Duration returns the pacing value as a time.Duration.
func (s Setting) Duration() time.Duration {
	return time.Duration(s.Millis()) * time.Millisecond
}

// String implements pflag.Value.
func (s *Setting) String() string {
	return strconv.Itoa(s.Millis())
}

// Set implements pflag.Value.
func (s *Setting) Set(raw string) error {
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Setting) Type() string {
	return "ms"
}

func clamp(ms int) int {
	return max(Min, min(Max, ms))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
