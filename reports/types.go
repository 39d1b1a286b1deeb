package reports

import (
	"errors"
	"fmt"
)

// Sentinel errors for report parsing.
var (
	// ErrMalformedLevel indicates a token that is not a base-10 integer.
	ErrMalformedLevel = errors.New("reports: level is not an integer")
)

// Record is one parsed input line: an ordered run of levels.
// Records are never modified after parsing.
type Record []int

// ParseError locates a malformed token in the input.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending token
	Err   error  // underlying strconv error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("reports: line %d: %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap lets errors.Is match both ErrMalformedLevel and the strconv cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLevel, e.Err}
}
