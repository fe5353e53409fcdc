package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a gin binding error into a field-level
// ErrorDetail. Non-validator errors become a generic bad-request detail.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		detail := NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
		return detail.WithDetails(err.Error())
	}

	// Report the first failing field; clients fix one at a time anyway
	first := validationErrors[0]
	detail := NewErrorDetail(ErrorCodeValidationFailed, formatFieldError(first))
	return detail.WithField(first.Field())
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "len":
		return e.Field() + " must be exactly " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
