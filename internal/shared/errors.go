// Package shared contains the value objects and error taxonomy used by every
// billing entity. Constructors either return a valid immutable value or a
// *ValidationError; no partially constructed value is observable.
package shared

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is. Callers distinguish malformed input from
// operations that are illegal in the current lifecycle state.
var (
	ErrValidation        = errors.New("validation_error")
	ErrInvalidTransition = errors.New("invalid_transition")
)

// ValidationError reports which invariant broke during construction or a
// date mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// TransitionError reports a lifecycle operation rejected by the current status.
type TransitionError struct {
	Entity string
	From   string
	Op     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s %s", e.Op, e.From, e.Entity)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func NewTransitionError(entity, from, op string) error {
	return &TransitionError{Entity: entity, From: from, Op: op}
}
