package response

import (
	"net/http"

	deliverycontext "calsync/internal/delivery/context"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}

// PlainError is the bare body used by the login and calendar endpoints.
type PlainError struct {
	Error string `json:"error"`
	// IsAuthenticated is only sent, as false, when calendar access must be re-linked.
	IsAuthenticated *bool `json:"isAuthenticated,omitempty"`
}

// Plain writes data without the success envelope.
func Plain(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// PlainErrorMessage writes {"error": message}.
func PlainErrorMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, PlainError{Error: message})
}

// PlainUnauthorized writes a 401 {"error": message}.
func PlainUnauthorized(c echo.Context, message string) error {
	return PlainErrorMessage(c, http.StatusUnauthorized, message)
}

// NotAuthenticated writes a 403 {"error": message, "isAuthenticated": false}.
func NotAuthenticated(c echo.Context, message string) error {
	authenticated := false

	return c.JSON(http.StatusForbidden, PlainError{Error: message, IsAuthenticated: &authenticated})
}

// PlainAppError maps err to a bare error body. Unknown errors become fallbackStatus.
func PlainAppError(c echo.Context, err error, fallbackStatus int, fallbackMessage string) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return PlainErrorMessage(c, appErr.HTTPCode(), appErr.Message())
	}

	return PlainErrorMessage(c, fallbackStatus, fallbackMessage)
}
