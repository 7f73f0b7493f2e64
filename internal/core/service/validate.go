package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/userhub/auth-service/internal/core/domain"
)

// checkInput runs struct validation and converts the result into a
// domain.ValidationError carrying one message per failing field.
func checkInput(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate input: %w", err)
	}

	violations := make([]domain.FieldViolation, 0, len(ve))
	for _, fe := range ve {
		violations = append(violations, domain.FieldViolation{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return &domain.ValidationError{Violations: violations}
}

// fieldMessage converts a single validator failure into a human-readable
// constraint description.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
