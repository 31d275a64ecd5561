package form

import (
	"errors"
	"fmt"
)

// ErrUnknownField is the sentinel wrapped by UnknownFieldError.
var ErrUnknownField = errors.New("unknown field")

// UnknownFieldError reports a field or interest name outside the schema.
type UnknownFieldError struct {
	Name  string
	Group Field // set when Name is a member of a flag group (e.g. interests)
}

func (e *UnknownFieldError) Error() string {
	if e == nil {
		return ""
	}
	if e.Group != "" {
		return fmt.Sprintf("%s: %s %q", ErrUnknownField, e.Group, e.Name)
	}
	return fmt.Sprintf("%s: %q", ErrUnknownField, e.Name)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }
