package dissonance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports a negative frequency or amplitude, or an
	// otherwise unusable numeric argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownModel reports a model name missing from the registry.
	ErrUnknownModel = errors.New("unknown dissonance model")

	// ErrLengthMismatch reports inputs whose lengths cannot be broadcast together.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidModel reports a nil model or a model without a name.
	ErrInvalidModel = errors.New("invalid dissonance model")

	// ErrDuplicateModel reports two models registered under one name.
	ErrDuplicateModel = errors.New("duplicate dissonance model")

	// ErrUnknownAggregation reports an aggregation name that is not supported.
	ErrUnknownAggregation = errors.New("unknown aggregation")
)

// InvalidInputError describes which argument held negative values.
type InvalidInputError struct {
	Argument string // argument name, e.g. "f1" or "amplitudes"
	Count    int    // number of negative elements
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s has %d negative value(s)", e.Argument, e.Count)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// UnknownModelError carries the name that failed to resolve.
type UnknownModelError struct {
	Name string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown dissonance model %q", e.Name)
}

func (e *UnknownModelError) Unwrap() error {
	return ErrUnknownModel
}
