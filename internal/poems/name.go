// ABOUTME: Name is a validated poem identifier: trimmed and never empty
// ABOUTME: ParseName is the only constructor; blank input fails with ErrEmptyName

package poems

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrEmptyName is returned when a poem name is blank after trimming.
	ErrEmptyName = errors.New("writing name must not be empty")
	// ErrPoemNotFound is returned when no poem matches a name.
	ErrPoemNotFound = errors.New("writing not found")
)

// Name is a trimmed, non-empty poem identifier.
type Name struct {
	s string
}

// ParseName trims raw and rejects it if nothing is left.
func ParseName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, ErrEmptyName
	}
	return Name{s: trimmed}, nil
}

// String returns the trimmed name as typed.
func (n Name) String() string {
	return n.s
}

// IsZero reports whether n was never parsed.
func (n Name) IsZero() bool {
	return n.s == ""
}

// fold returns the caseless form of s used for matching and sorting.
// A new Caser is created per call because Casers are stateful.
func fold(s string) string {
	return cases.Fold().String(s)
}
