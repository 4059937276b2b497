package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/forms"
	"cryptodash/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code and message, plus per-field details when they wrap form
// validation errors; unexpected errors are logged and return a generic
// internal error to avoid leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		c.JSON(ErrorResponse(c, c.Errors.Last().Err))
	}
}

// ErrorResponse returns the status and JSON body for err, logging errors
// that carry internal details. A canceled request is not logged as an error.
func ErrorResponse(c *gin.Context, err error) (int, gin.H) {
	// Nobody is left to read the body; the request log records the status.
	if errors.Is(err, context.Canceled) {
		return apperrors.ErrRequestCanceled.StatusCode, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrRequestCanceled.Code,
				"message": apperrors.ErrRequestCanceled.Message,
			},
		}
	}

	var verrs forms.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.ErrValidationFailed.StatusCode, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrValidationFailed.Code,
				"message": apperrors.ErrValidationFailed.Message,
				"fields":  verrs,
			},
		}
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"request_id", RequestID(c),
			)
		}
		return appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		}
	}

	// Unexpected error: log full details, return generic message
	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", RequestID(c),
	)
	return apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	}
}
