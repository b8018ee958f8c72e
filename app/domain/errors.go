package domain

import "errors"

// Store-level sentinel errors. Repositories and gateways translate their
// backend's error model into these so callers can branch without knowing the
// underlying driver.
var (
	// ErrProfileNotFound is the well-defined "no rows" condition of the
	// profile store. Anything else a lookup returns must be treated as the
	// store being unavailable, never as the row being absent.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUsernameTaken is returned when the profile store's unique constraint
	// on username rejects an insert. The insert-time constraint is the
	// authoritative uniqueness guard; the registration pre-check is only an
	// optimization.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrPostNotFound is the "no rows" condition of the post store.
	ErrPostNotFound = errors.New("post not found")

	// ErrNoSession is returned by credential operations that require an
	// active session when none is held.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidCredentials is returned by the credential gateway when the
	// identity provider rejects an email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountErrorKind identifies a typed failure of an account lifecycle
// operation. The flat taxonomy is the whole contract between the workflow and
// its callers; raw store errors never cross this boundary.
type AccountErrorKind string

const (
	KindInvalidUsername        AccountErrorKind = "INVALID_USERNAME"
	KindUsernameTaken          AccountErrorKind = "USERNAME_TAKEN"
	KindIdentityCreationFailed AccountErrorKind = "IDENTITY_CREATION_FAILED"
	KindProfileCreationFailed  AccountErrorKind = "PROFILE_CREATION_FAILED"
	KindAuthenticationFailed   AccountErrorKind = "AUTHENTICATION_FAILED"
	KindProfileMissing         AccountErrorKind = "PROFILE_MISSING"
	KindStoreUnavailable       AccountErrorKind = "STORE_UNAVAILABLE"
	KindSignOutFailed          AccountErrorKind = "SIGN_OUT_FAILED"
)

// AccountError is the typed failure outcome of a workflow operation, carrying
// a human-readable detail string for the UI and the underlying cause for
// logging.
type AccountError struct {
	Kind    AccountErrorKind
	Message string
	Cause   error
}

func (e *AccountError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AccountError) Unwrap() error {
	return e.Cause
}

// NewAccountError creates a new account lifecycle error.
func NewAccountError(kind AccountErrorKind, message string, cause error) *AccountError {
	return &AccountError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// AccountErrorKindOf extracts the failure kind from an error returned by a
// workflow operation. It returns the empty kind for nil and untyped errors.
func AccountErrorKindOf(err error) AccountErrorKind {
	var accErr *AccountError
	if errors.As(err, &accErr) {
		return accErr.Kind
	}
	return ""
}
