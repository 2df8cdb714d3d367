package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bdreece/errands/internal/errands"
)

// Exit codes returned by the errands binary.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitNotFound    = 3
	ExitParse       = 4
	ExitLookup      = 5
	ExitPattern     = 6
	ExitInterrupted = 130
)

// usageError marks errors caused by bad arguments or flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, errands.ErrPattern):
		return ExitPattern
	case errors.Is(err, errands.ErrPriorityNotFound):
		return ExitLookup
	case errors.Is(err, errands.ErrParse):
		return ExitParse
	case errors.Is(err, errands.ErrNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}
