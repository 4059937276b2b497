// Package errors provides custom error types for the cryptodash API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrLoginFailed  = &AppError{Code: "LOGIN_FAILED", Message: "Login failed. Check your credentials.", StatusCode: http.StatusUnauthorized}
	ErrSessionStore = &AppError{Code: "SESSION_STORE_ERROR", Message: "Session could not be saved", StatusCode: http.StatusInternalServerError}
)

// StatusClientClosedRequest is the non-standard status recorded when the
// client went away before the response was written.
const StatusClientClosedRequest = 499

// General errors.
var (
	ErrInvalidInput    = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound        = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer  = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrRequestCanceled = &AppError{Code: "REQUEST_CANCELED", Message: "Request canceled", StatusCode: StatusClientClosedRequest}
)

// Market data errors.
var (
	ErrMarketDataUnavailable = &AppError{Code: "MARKET_DATA_UNAVAILABLE", Message: "Error loading cryptocurrency data", StatusCode: http.StatusBadGateway}
	ErrCoinNotFound          = &AppError{Code: "COIN_NOT_FOUND", Message: "Coin not found", StatusCode: http.StatusNotFound}
)

// Portfolio errors.
var (
	ErrValidationFailed = &AppError{Code: "VALIDATION_FAILED", Message: "One or more fields are invalid", StatusCode: http.StatusBadRequest}
)
