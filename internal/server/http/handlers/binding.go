package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/projectdesk/internal/domain/errors"
	"github.com/polkiloo/projectdesk/internal/server/http/dto"
)

const (
	msgInvalidJSON      = "Invalid JSON"
	msgValidationFailed = "Missing required fields"
	msgServerError      = "Server error"
)

var errMalformedJSON = fmt.Errorf("%w: malformed json", domainErrors.ErrInvalidInput)

var fieldNamesOnce sync.Once

// useJSONFieldNames makes validation errors report JSON keys instead of Go field names.
func useJSONFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = messageForTag(fe)
		}
		return domainErrors.NewValidationError(fields)
	}
	return fmt.Errorf("%w: %v", errMalformedJSON, err)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}

// respondError writes the response for errors common to all endpoints.
func respondError(c *gin.Context, err error) {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgValidationFailed, Fields: validationErr.Fields})
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidJSON})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgServerError})
	}
}
