package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/logger"
)

// developmentMode controls whether internal error details leak into responses
var developmentMode bool

// SetDevelopmentMode toggles debug info in 500 responses. Call once at startup.
func SetDevelopmentMode(enabled bool) {
	developmentMode = enabled
}

// HandleAPIError maps application errors to the standard error response.
// Every controller funnels its failures through here so status codes and
// error codes stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	status, errorDetail := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		if developmentMode {
			errorDetail = errorDetail.WithDebugInfo("%v", err)
		}
	}

	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	message := err.Error()

	switch {
	// Not found
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrProfileNotLinked,
		apperrors.ErrFederationNotFound,
		apperrors.ErrPaymentNotFound,
		apperrors.ErrEventNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	// Duplicates and conflicting state
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrLicenseNumberExists,
		apperrors.ErrPaymentExists,
		apperrors.ErrPaymentAlreadyPaid,
		apperrors.ErrFederationHasRelations):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)

	// Invalid input and domain rule violations
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrInvalidBelt,
		apperrors.ErrInvalidCategory,
		apperrors.ErrInvalidPeriod,
		apperrors.ErrInvalidPaymentMethod,
		apperrors.ErrMartialArtNotCovered,
		apperrors.ErrStudentInactive,
		apperrors.ErrStudentNotFederated,
		apperrors.ErrInvalidEvent):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	// Authentication
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)
	case apperrors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message)
	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message)

	// Authorization
	case apperrors.Is(err, apperrors.ErrAccountDisabled,
		apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message)
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
}

// HandleValidationErrors returns a 400 carrying per-field binding failures
func HandleValidationErrors(c *gin.Context, validationErrors *dto.ValidationErrors) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed").
		WithDetails(validationErrors.Errors)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
