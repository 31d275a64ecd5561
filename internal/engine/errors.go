package engine

import (
	"demopage/internal/delayed"
	"demopage/internal/form"
)

// Error kinds surfaced by intents. Use errors.Is with the sentinels or
// errors.As with the typed errors.
var (
	ErrUnknownField      = form.ErrUnknownField
	ErrInvalidTransition = delayed.ErrInvalidTransition
)

type (
	UnknownFieldError      = form.UnknownFieldError
	InvalidTransitionError = delayed.InvalidTransitionError
)
