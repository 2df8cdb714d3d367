package errands

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrNotFound         = errors.New("errands list not found")
	ErrParse            = errors.New("malformed errands list")
	ErrPriorityNotFound = errors.New("priority not found")
	ErrPattern          = errors.New("invalid ignore pattern")
)

// ValidationError represents a schema violation with context.
type ValidationError struct {
	Path string // dotted path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParseError reports a list file that could not be decoded or failed
// validation. Errors holds every schema violation found.
type ParseError struct {
	File   string
	Errors []error
}

func (e *ParseError) Error() string {
	msg := ErrParse.Error()
	if e.File != "" {
		msg = fmt.Sprintf("%s %s", msg, e.File)
	}
	switch len(e.Errors) {
	case 0:
		return msg
	case 1:
		return fmt.Sprintf("%s: %v", msg, e.Errors[0])
	default:
		return fmt.Sprintf("%s: %v (and %d more)", msg, e.Errors[0], len(e.Errors)-1)
	}
}

// Unwrap allows errors.Is(err, ErrParse) and inspection of the causes.
func (e *ParseError) Unwrap() []error {
	return append([]error{ErrParse}, e.Errors...)
}

// LookupError reports a priority-scoped query on a bucket that does not exist.
type LookupError struct {
	Priority Priority
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPriorityNotFound, e.Priority)
}

func (e *LookupError) Unwrap() error {
	return ErrPriorityNotFound
}

// PatternError reports an ignore pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrPattern, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrPattern, e.Err}
}
