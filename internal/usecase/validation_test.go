package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/projectdesk/internal/domain/errors"
	"github.com/polkiloo/projectdesk/internal/domain/model"
)

func TestValidateOrderInput(t *testing.T) {
	assert.NoError(t, ValidateOrderInput(validOrder()))

	err := ValidateOrderInput(model.OrderInput{})
	var verr *domainErrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 5)
	for _, field := range []string{"name", "phone", "email", "projectType", "description"} {
		assert.Equal(t, "is required", verr.Fields[field], field)
	}
}

func TestValidateReviewInput(t *testing.T) {
	assert.NoError(t, ValidateReviewInput(model.ReviewInput{Name: "Anna", Text: "Great"}))

	err := ValidateReviewInput(model.ReviewInput{Name: "Anna", Text: "   "})
	var verr *domainErrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"text": "is required"}, verr.Fields)
}

func TestNormalizeOrderInputTrimsContactFields(t *testing.T) {
	in := normalizeOrderInput(model.OrderInput{Name: "  Ivan ", Email: " ivan@example.com\t", Description: "  keep  "})
	assert.Equal(t, "Ivan", in.Name)
	assert.Equal(t, "ivan@example.com", in.Email)
	assert.Equal(t, "  keep  ", in.Description)
}
