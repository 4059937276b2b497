package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/middleware"
)

// pathCoinID reads the coin id path parameter.
// Returns ErrInvalidInput if it is blank.
func pathCoinID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid coin id")
	}
	return strings.ToLower(id), nil
}

// respondWithError writes a consistent JSON error response. AppErrors keep
// their status code, code and message; form validation errors carry a
// "fields" array; anything else is logged and returned as a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	c.JSON(middleware.ErrorResponse(c, err))
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// FieldErrorDetail is ErrorDetail with per-field validation errors.
type FieldErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  []FieldErrorEntry `json:"fields"`
}

// FieldErrorEntry is the first failing rule of a form field.
type FieldErrorEntry struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrorResponse represents a form validation error response.
type ValidationErrorResponse struct {
	Error FieldErrorDetail `json:"error"`
}
