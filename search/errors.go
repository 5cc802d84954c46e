package search

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is matched by every error caused by a malformed regex.
var ErrInvalidPattern = errors.New("search: invalid pattern")

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("search: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidPattern) hold for every PatternError.
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }
