package chrono

import (
	"errors"
	"fmt"
)

// ScaleError reports a violated scale precondition at a checked boundary
// API. The unchecked constructors and projections never produce it; they
// trust their callers by contract.
type ScaleError struct {
	// Code identifies the error category.
	Code ScaleErrorCode

	// Message is a human-readable description.
	Message string

	// Scale names the offending timescale, when known.
	Scale string
}

// ScaleErrorCode categorizes scale errors.
type ScaleErrorCode string

const (
	// ErrCodeInvalidTimescale indicates a scale that cannot participate in
	// conversion: nil, or carrying an empty identity.
	ErrCodeInvalidTimescale ScaleErrorCode = "INVALID_TIMESCALE"

	// ErrCodeTimescaleMismatch indicates an operation that assumed a
	// TAI-compatible unit was applied to a scale with a different basis.
	ErrCodeTimescaleMismatch ScaleErrorCode = "TIMESCALE_MISMATCH"
)

// Error implements the error interface.
func (e *ScaleError) Error() string {
	if e.Scale != "" {
		return fmt.Sprintf("%s: %s (scale=%s)", e.Code, e.Message, e.Scale)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidTimescale reports whether err denotes an unusable scale.
// Uses errors.As to handle wrapped errors.
func IsInvalidTimescale(err error) bool {
	var se *ScaleError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidTimescale
	}
	return false
}

// IsTimescaleMismatch reports whether err denotes a unit-basis mismatch.
// Uses errors.As to handle wrapped errors.
func IsTimescaleMismatch(err error) bool {
	var se *ScaleError
	if errors.As(err, &se) {
		return se.Code == ErrCodeTimescaleMismatch
	}
	return false
}
