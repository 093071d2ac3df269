package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"invalid input", ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.err)
		})
	}
}

func TestValidationErrorMatchesInvalidInput(t *testing.T) {
	err := NewValidationError(map[string]string{"phone": "is required", "name": "is required"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, fmt.Errorf("submit order: %w", err), ErrInvalidInput)
	assert.False(t, stdErrors.Is(err, ErrNotFound))
	assert.Equal(t, "invalid input: field 'name' is required; field 'phone' is required", err.Error())
}

func TestValidationErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", NewValidationError(map[string]string{"text": "is required"}))

	var verr *ValidationError
	if assert.True(t, stdErrors.As(wrapped, &verr)) {
		assert.Equal(t, "is required", verr.Fields["text"])
	}
}
