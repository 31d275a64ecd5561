package script

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVerb = errors.New("unknown command")
	ErrArgs        = errors.New("wrong number of arguments")
	ErrBadArg      = errors.New("invalid argument")
)

// LineError ties a failure to its script line.
type LineError struct {
	Line int
	Cmd  string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Cmd, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
