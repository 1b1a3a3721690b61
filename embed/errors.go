package embed

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by every URL-generating method when the
// builder holds an empty API key. Recoverable: set a key and retry.
var ErrMissingAPIKey = errors.New("missing Google Maps API key")

// ValidationError reports a rejected parameter value. It is returned
// immediately by the setter or mode method that received the value; the
// builder's configuration is never left partially updated.
type ValidationError struct {
	Field string
	Value any
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Msg)
}

// errInvalidEnum builds a ValidationError for a value outside an enumerated
// domain.
func errInvalidEnum(field string, value any, allowed string) error {
	return &ValidationError{
		Field: field,
		Value: value,
		Msg:   fmt.Sprintf("must be one of %s", allowed),
	}
}

// errOutOfRange builds a ValidationError for a coordinate outside its
// geographic range.
func errOutOfRange(field string, value float64, min, max float64) error {
	return &ValidationError{
		Field: field,
		Value: value,
		Msg:   fmt.Sprintf("must be within [%g, %g]", min, max),
	}
}

// errEmpty builds a ValidationError for a required string parameter that
// was passed empty.
func errEmpty(field string) error {
	return &ValidationError{
		Field: field,
		Value: "",
		Msg:   "must not be empty",
	}
}
