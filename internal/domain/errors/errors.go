package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError lists fields that failed presence checks. It matches ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds ValidationError from field → message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, "field '"+name+"' "+e.Fields[name])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ValidationError as ErrInvalidInput for errors.Is checks.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
