package errors

import (
	"maps"
	"slices"
	"strings"
)

// FieldErrors maps a field name to the reason it was rejected.
type FieldErrors map[string]string

// ValidationError is a VALIDATION_FAILED error carrying per-field details.
type ValidationError struct {
	*BaseError
	fields FieldErrors
}

// NewValidationError builds a validation error for the given fields.
func NewValidationError(fields FieldErrors) *ValidationError {
	keys := slices.Sorted(maps.Keys(fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}

	return &ValidationError{
		BaseError: ErrValidationFailed.WithDetails(strings.Join(parts, "; ")),
		fields:    fields,
	}
}

// Fields returns the rejected fields.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return e.BaseError
}
