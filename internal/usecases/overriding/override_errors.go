package overriding

import (
	"errors"
	"fmt"
)

var (
	ErrOverrideNotFound    = errors.New("override not found")
	ErrInvalidOverrideType = errors.New("invalid override type")
	ErrInvalidValue        = errors.New("override value is not a valid number")
	ErrInvalidScope        = errors.New("override scope is malformed")
	ErrMissingReason       = errors.New("override reason is required")
	ErrDatabaseOperation   = errors.New("database operation error")
)

// OverrideError carries extra context for an override failure.
type OverrideError struct {
	Err        error
	Code       string
	OverrideID string
	Details    string
}

func (e *OverrideError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OverrideError) Unwrap() error {
	return e.Err
}

func NewOverrideError(err error, code string, details string) *OverrideError {
	return &OverrideError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
