package errors

import (
	"errors"
	"fmt"
	"net/http"

	"blog-service/app/domain"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Account lifecycle errors
	ErrCodeInvalidUsername        ErrorCode = "INVALID_USERNAME"
	ErrCodeUsernameTaken          ErrorCode = "USERNAME_TAKEN"
	ErrCodeIdentityCreationFailed ErrorCode = "IDENTITY_CREATION_FAILED"
	ErrCodeProfileCreationFailed  ErrorCode = "PROFILE_CREATION_FAILED"
	ErrCodeAuthenticationFailed   ErrorCode = "AUTHENTICATION_FAILED"
	ErrCodeProfileMissing         ErrorCode = "PROFILE_MISSING"
	ErrCodeStoreUnavailable       ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeSignOutFailed          ErrorCode = "SIGN_OUT_FAILED"

	// Session errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"

	// Content errors
	ErrCodeProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodePostNotFound    ErrorCode = "POST_NOT_FOUND"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField     ErrorCode = "MISSING_FIELD"

	// System errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeKratosError   ErrorCode = "KRATOS_ERROR"
	ErrCodeConfigError   ErrorCode = "CONFIG_ERROR"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest         ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeConflict           ErrorCode = "CONFLICT"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// FromAccountError translates a typed account lifecycle failure into an
// AppError carrying the matching HTTP status. The workflow's detail string
// becomes the response message; the cause stays server-side.
func FromAccountError(err *domain.AccountError) *AppError {
	return Wrap(codeForKind(err.Kind), err.Message, err.Cause)
}

func codeForKind(kind domain.AccountErrorKind) ErrorCode {
	switch kind {
	case domain.KindInvalidUsername:
		return ErrCodeInvalidUsername
	case domain.KindUsernameTaken:
		return ErrCodeUsernameTaken
	case domain.KindIdentityCreationFailed:
		return ErrCodeIdentityCreationFailed
	case domain.KindProfileCreationFailed:
		return ErrCodeProfileCreationFailed
	case domain.KindAuthenticationFailed:
		return ErrCodeAuthenticationFailed
	case domain.KindProfileMissing:
		return ErrCodeProfileMissing
	case domain.KindStoreUnavailable:
		return ErrCodeStoreUnavailable
	case domain.KindSignOutFailed:
		return ErrCodeSignOutFailed
	default:
		return ErrCodeInternalError
	}
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeAuthenticationFailed, ErrCodeProfileMissing:
		return http.StatusUnauthorized
	case ErrCodeProfileNotFound, ErrCodePostNotFound, ErrCodeSessionNotFound, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUsernameTaken, ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeInvalidUsername, ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeMissingField, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeServiceUnavailable, ErrCodeKratosError, ErrCodeStoreUnavailable, ErrCodeIdentityCreationFailed:
		return http.StatusServiceUnavailable
	case ErrCodeInternalError, ErrCodeDatabaseError, ErrCodeConfigError, ErrCodeProfileCreationFailed, ErrCodeSignOutFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors

var (
	ErrUnauthorized    = New(ErrCodeUnauthorized, "authentication required")
	ErrSessionNotFound = New(ErrCodeSessionNotFound, "session not found")

	ErrProfileNotFound = New(ErrCodeProfileNotFound, "profile not found")
	ErrPostNotFound    = New(ErrCodePostNotFound, "post not found")

	ErrInternalError      = New(ErrCodeInternalError, "internal server error")
	ErrDatabaseError      = New(ErrCodeDatabaseError, "database error")
	ErrKratosError        = New(ErrCodeKratosError, "kratos service error")
	ErrServiceUnavailable = New(ErrCodeServiceUnavailable, "service temporarily unavailable")
	ErrRateLimitExceeded  = New(ErrCodeRateLimitExceeded, "rate limit exceeded")

	ErrValidationFailed = New(ErrCodeValidationFailed, "validation failed")
	ErrInvalidInput     = New(ErrCodeInvalidInput, "invalid input")
	ErrBadRequest       = New(ErrCodeBadRequest, "bad request")
)

// NewUnauthorized creates an unauthorized error with context
func NewUnauthorized(details string) *AppError {
	return New(ErrCodeUnauthorized, "authentication required").WithDetails(details)
}

// NewNotFound creates a not found error with context
func NewNotFound(resource string) *AppError {
	return Newf(ErrCodeNotFound, "%s not found", resource)
}
