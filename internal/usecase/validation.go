package usecase

import (
	"strings"

	domainErrors "github.com/polkiloo/projectdesk/internal/domain/errors"
	"github.com/polkiloo/projectdesk/internal/domain/model"
)

const msgRequired = "is required"

// ValidateOrderInput checks that every mandatory order field is present.
func ValidateOrderInput(in model.OrderInput) error {
	return requireFields(map[string]string{
		"name":        in.Name,
		"phone":       in.Phone,
		"email":       in.Email,
		"projectType": in.ProjectType,
		"description": in.Description,
	})
}

// ValidateReviewInput checks that every mandatory review field is present.
func ValidateReviewInput(in model.ReviewInput) error {
	return requireFields(map[string]string{
		"name": in.Name,
		"text": in.Text,
	})
}

func requireFields(values map[string]string) error {
	missing := make(map[string]string)
	for field, value := range values {
		if strings.TrimSpace(value) == "" {
			missing[field] = msgRequired
		}
	}
	if len(missing) > 0 {
		return domainErrors.NewValidationError(missing)
	}
	return nil
}

func normalizeOrderInput(in model.OrderInput) model.OrderInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.ProjectType = strings.TrimSpace(in.ProjectType)
	in.ProjectName = strings.TrimSpace(in.ProjectName)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.Urgency = strings.TrimSpace(in.Urgency)
	return in
}

func normalizeReviewInput(in model.ReviewInput) model.ReviewInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Project = strings.TrimSpace(in.Project)
	return in
}
