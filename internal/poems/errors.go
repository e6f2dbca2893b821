// ABOUTME: NotFoundError reports an unknown poem name with fuzzy suggestions
// ABOUTME: Unwraps to ErrPoemNotFound so callers can use errors.Is

package poems

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Lookup when no poem matches.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%v: %s", ErrPoemNotFound, e.Name)
	}
	return fmt.Sprintf("%v: %s (did you mean %s?)", ErrPoemNotFound, e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrPoemNotFound
}
