package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Services wrap
// their failures in apperrors sentinels; controllers funnel anything they
// cannot answer themselves through here.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := ""
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		if message == "" {
			message = "Validation failed"
		}
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		if message == "" {
			message = "Resource not found"
		}
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		if message == "" {
			message = "Permission denied"
		}
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, message),
		})
	case errors.Is(err, apperrors.ErrSelfAction):
		if message == "" {
			message = "Action targets the acting user"
		}
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, message),
		})
	case errors.Is(err, apperrors.ErrConflict):
		if message == "" {
			message = "Resource already exists"
		}
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
