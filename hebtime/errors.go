package hebtime

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error Convert returns.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a time component outside of its valid range.
type ArgumentError struct {
	Field string // "hour" or "minute"
	Value int    // the offending value
	Min   int    // lower bound, inclusive
	Max   int    // upper bound, inclusive
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must be between %d and %d, is %d",
		ErrInvalidArgument, e.Field, e.Min, e.Max, e.Value)
}

// Unwrap makes an ArgumentError match ErrInvalidArgument with errors.Is.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &ArgumentError{Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}
