package outcome

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is raised when an outcome is constructed without
	// the payload its state requires.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is raised when an accessor does not match the outcome state.
	ErrInvalidState = errors.New("invalid state")
)

// PanicError wraps a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func invalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// IsContractViolation reports whether err is one of the misuse errors
// raised by this package.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidState)
}
