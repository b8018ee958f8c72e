package domain

import (
	"time"
)

// Identity is the authenticated user record owned by the external credential
// service (Ory Kratos). The application never mutates it directly; it only
// requests creation and session teardown through the credential gateway.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is a live, renewable proof of authentication bound to exactly one
// identity. Refresh and expiry are handled entirely by the credential service;
// this type is a read-only snapshot of what the service reports.
type Session struct {
	ID              string    `json:"id"`
	Identity        *Identity `json:"identity"`
	Active          bool      `json:"active"`
	ExpiresAt       time.Time `json:"expires_at"`
	AuthenticatedAt time.Time `json:"authenticated_at"`
}

// IsValid reports whether the session is active and not yet expired. The
// credential service may omit the expiry; a zero ExpiresAt means no expiry
// was reported and the session is taken at its Active word.
func (s *Session) IsValid() bool {
	if s == nil || !s.Active {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Before(s.ExpiresAt)
}
