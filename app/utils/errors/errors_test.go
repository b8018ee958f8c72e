package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"blog-service/app/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeProfileNotFound, "profile not found"),
			expected: "PROFILE_NOT_FOUND: profile not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDatabaseError, "database error", errors.New("connection failed")),
			expected: "DATABASE_ERROR: database error (caused by: connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	err := Wrap(ErrCodeInternalError, "wrapped error", cause)

	unwrapped := errors.Unwrap(err)
	assert.Equal(t, cause, unwrapped)
}

func TestAppError_WithContext(t *testing.T) {
	err := New(ErrCodeProfileNotFound, "profile not found")
	err.WithContext("identity_id", "123")
	err.WithContext("username", "newuser")

	assert.Equal(t, "123", err.Context["identity_id"])
	assert.Equal(t, "newuser", err.Context["username"])
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(ErrCodeValidationFailed, "validation failed")
	err.WithDetails("email field is required")

	assert.Equal(t, "email field is required", err.Details)
}

func TestNew(t *testing.T) {
	err := New(ErrCodeProfileNotFound, "profile not found")

	assert.Equal(t, ErrCodeProfileNotFound, err.Code)
	assert.Equal(t, "profile not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Nil(t, err.Cause)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodePostNotFound, "post %s not found", "p1")

	assert.Equal(t, ErrCodePostNotFound, err.Code)
	assert.Equal(t, "post p1 not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}

func TestIsAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "AppError",
			err:      New(ErrCodeProfileNotFound, "profile not found"),
			expected: true,
		},
		{
			name:     "wrapped AppError",
			err:      fmt.Errorf("wrapped: %w", New(ErrCodeProfileNotFound, "profile not found")),
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAppError(tt.err))
		})
	}
}

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "unauthorized",
			err:      ErrUnauthorized,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "rate limit",
			err:      ErrRateLimitExceeded,
			expected: http.StatusTooManyRequests,
		},
		{
			name:     "kratos unavailable",
			err:      ErrKratosError,
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "plain error falls back to 500",
			err:      errors.New("plain"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatusCode(tt.err))
		})
	}
}

func TestFromAccountError(t *testing.T) {
	tests := []struct {
		name       string
		kind       domain.AccountErrorKind
		wantCode   ErrorCode
		wantStatus int
	}{
		{
			name:       "invalid username",
			kind:       domain.KindInvalidUsername,
			wantCode:   ErrCodeInvalidUsername,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "username taken",
			kind:       domain.KindUsernameTaken,
			wantCode:   ErrCodeUsernameTaken,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "identity creation failed",
			kind:       domain.KindIdentityCreationFailed,
			wantCode:   ErrCodeIdentityCreationFailed,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "profile creation failed",
			kind:       domain.KindProfileCreationFailed,
			wantCode:   ErrCodeProfileCreationFailed,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "authentication failed",
			kind:       domain.KindAuthenticationFailed,
			wantCode:   ErrCodeAuthenticationFailed,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "profile missing",
			kind:       domain.KindProfileMissing,
			wantCode:   ErrCodeProfileMissing,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "store unavailable",
			kind:       domain.KindStoreUnavailable,
			wantCode:   ErrCodeStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "sign out failed",
			kind:       domain.KindSignOutFailed,
			wantCode:   ErrCodeSignOutFailed,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accErr := domain.NewAccountError(tt.kind, "detail", errors.New("cause"))
			appErr := FromAccountError(accErr)

			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			assert.Equal(t, "detail", appErr.Message)
			assert.ErrorIs(t, appErr, accErr.Cause)
		})
	}
}
