package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrMatricNoExists       = errors.New("matric number already registered")
	ErrInvalidMatricNo      = errors.New("invalid matric number format")
	ErrDepartmentMismatch   = errors.New("matric number does not match selected department")
	ErrInvalidPhoneNumber   = errors.New("invalid phone number")
)

// Department errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name or code already exists")
)

// Item errors
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrItemAlreadyClaimed = errors.New("item has already been claimed")
	ErrItemNotClaimable   = errors.New("item is not available to claim")
	ErrItemNotLost        = errors.New("item is not marked as lost")
	ErrSelfClaim          = errors.New("cannot claim an item you reported")
	ErrSelfMarkFound      = errors.New("cannot mark your own lost item as found")
	ErrLocationRequired   = errors.New("found location is required")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a CustomError wrapping ErrValidationFailed with a
// field-level message.
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}
