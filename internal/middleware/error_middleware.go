package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
	"github.com/tunde/campusfound/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers call
// it for any service error; unknown errors collapse to a generic 500 so
// internals never leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrItemNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrUsernameTaken):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already taken")
	case errors.Is(err, apperrors.ErrMatricNoExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Matric number already registered")
	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Department already exists")

	case errors.Is(err, apperrors.ErrItemAlreadyClaimed):
		respondError(c, http.StatusConflict, dto.ErrorCodePreconditionFailed, "Item has already been claimed")
	case errors.Is(err, apperrors.ErrItemNotClaimable):
		respondError(c, http.StatusConflict, dto.ErrorCodePreconditionFailed, "Item is not available to claim")
	case errors.Is(err, apperrors.ErrItemNotLost):
		respondError(c, http.StatusConflict, dto.ErrorCodePreconditionFailed, "Item is not marked as lost")
	case errors.Is(err, apperrors.ErrSelfClaim):
		respondError(c, http.StatusConflict, dto.ErrorCodePreconditionFailed, "You cannot claim an item you reported")
	case errors.Is(err, apperrors.ErrSelfMarkFound):
		respondError(c, http.StatusConflict, dto.ErrorCodePreconditionFailed, "You cannot mark your own lost item as found")

	case errors.Is(err, apperrors.ErrInvalidMatricNo):
		respondValidation(c, err, "Invalid matric number format")
	case errors.Is(err, apperrors.ErrDepartmentMismatch):
		respondValidation(c, err, "Matric number does not match the selected department")
	case errors.Is(err, apperrors.ErrInvalidPhoneNumber):
		respondValidation(c, err, "Invalid phone number")
	case errors.Is(err, apperrors.ErrLocationRequired):
		respondValidation(c, err, "Found location is required")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondValidation(c, err, "Validation failed")

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// respondValidation surfaces the specific message of wrapped validation errors
// when one is present.
func respondValidation(c *gin.Context, err error, fallback string) {
	message := fallback
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	var withDetails *apperrors.CustomError
	if errors.As(err, &withDetails) && withDetails.Details != nil {
		if field, ok := withDetails.Details["field"].(string); ok {
			errorDetail = errorDetail.WithField(field)
		}
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
