package delayed

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports an operation not defined for the current phase.
type InvalidTransitionError struct {
	Op   string
	From Phase
	To   Phase
}

func (e *InvalidTransitionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %s -> %s", ErrInvalidTransition, e.Op, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
