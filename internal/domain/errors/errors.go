package errors

import (
	"fmt"
	"net/http"

	"calsync/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"a user with this email already exists",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrEmailRequired is returned by both provider login flows when the profile has no email.
	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"email required",
		"",
	)

	// Session-related errors
	ErrInvalidSessionToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SESSION_TOKEN",
		"invalid or expired session token",
		"",
	)

	// Provider-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHENTICATED",
		"user is not authenticated with the calendar provider",
		"",
	)

	ErrEmptyTokenResponse = NewBaseError(
		http.StatusForbidden,
		"EMPTY_TOKEN_RESPONSE",
		"provider returned no token",
		"",
	)

	ErrCalendarUnavailable = NewBaseError(
		http.StatusBadGateway,
		"CALENDAR_UNAVAILABLE",
		"calendar provider request failed",
		"",
	)

	ErrUnsupportedProvider = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROVIDER",
		"unsupported identity provider",
		"",
	)

	ErrProviderExchangeFailed = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_EXCHANGE_FAILED",
		"token exchange with the identity provider failed",
		"",
	)

	ErrProviderAccessTokenMissing = NewBaseError(
		http.StatusBadRequest,
		"PROVIDER_ACCESS_TOKEN_MISSING",
		"provider access token header is required",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// ProviderAuthError is returned when the identity provider rejects a token request.
type ProviderAuthError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderAuthError) Error() string {
	return fmt.Sprintf("%s token endpoint returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// ProviderAPIError is a non-2xx response from a provider resource API.
type ProviderAPIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *ProviderAPIError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// TransientNetworkError wraps a transport failure talking to a provider.
type TransientNetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransientNetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransientNetworkError) Unwrap() error {
	return e.Err
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
