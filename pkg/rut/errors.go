package rut

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCleaningFailed is returned when no digit or check character survives cleaning.
	ErrCleaningFailed = errors.New("no rut characters left after cleaning")

	// ErrMalformedInput is returned by the throwing construction paths when the input cannot be parsed into a body and check character.
	ErrMalformedInput = errors.New("malformed rut")

	// ErrChecksumMismatch marks a parsed RUT whose check character does not match its body.
	ErrChecksumMismatch = errors.New("rut check character does not match body")

	// ErrBatchValidationFailed is returned when a batch contains fewer valid RUTs than inputs.
	ErrBatchValidationFailed = errors.New("rut batch validation failed")

	// ErrAlreadySet is returned when Set is called on a RUT that already holds a value.
	ErrAlreadySet = errors.New("rut already set")

	// ErrInvalidFormat is returned for unknown string formats.
	ErrInvalidFormat = errors.New("invalid rut format")

	// ErrInvalidJSONShape is returned for unknown JSON shapes.
	ErrInvalidJSONShape = errors.New("invalid rut json shape")

	// ErrRangeExhausted is returned when more unique RUTs are requested than the range can hold.
	ErrRangeExhausted = errors.New("rut range exhausted")
)

// BatchError describes a failed MakeAll call.
type BatchError struct {
	// Expected is the number of inputs.
	Expected int
	// Actual is the number of inputs that produced a valid RUT.
	Actual int
	// Value holds the offending input when exactly one input was given.
	Value any
	// Causes holds one error per invalid element.
	Causes []error
}

func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: expected %d valid ruts, got %d", ErrBatchValidationFailed, e.Expected, e.Actual)
	if e.Value != nil {
		fmt.Fprintf(&b, " (value %v)", e.Value)
	}
	return b.String()
}

// Unwrap exposes the batch sentinel and every element cause to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	return append([]error{ErrBatchValidationFailed}, e.Causes...)
}
