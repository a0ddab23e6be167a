package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campuserp/internal/app/models/dto"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
	"github.com/yigit/campuserp/internal/pkg/logger"
)

// HandleAPIError maps an error to its HTTP status and error response
func HandleAPIError(c *gin.Context, err error) {
	status, detail := mapError(err)

	// custom errors carry a user facing message
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

func mapError(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrInvalidRole):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidRole, "Invalid role").WithField("role")
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrScreenNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrDuplicateIdentity):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Directory entry already exists")
	case errors.Is(err, apperrors.ErrDirectoryUnavailable):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Credential directory unavailable")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
