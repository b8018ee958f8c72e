package port

//go:generate mockgen -source=credential_port.go -destination=../mocks/mock_credential_port.go

import (
	"context"

	"blog-service/app/domain"
)

// CredentialGateway is the client interface of the hosted identity provider
// (the Credential Store). Implementations translate the provider's error
// model into domain errors and hold the ambient session as explicit state on
// the gateway handle; the composition root owns the handle's lifetime.
type CredentialGateway interface {
	// CreateIdentity registers a new identity with the provider. On success
	// the provider may establish a session as a side effect; implementations
	// adopt it as the ambient session.
	CreateIdentity(ctx context.Context, email, password, username string) (*domain.Identity, error)

	// Authenticate performs a password login and adopts the resulting
	// session as the ambient session.
	Authenticate(ctx context.Context, email, password string) (*domain.Identity, error)

	// CurrentSession returns the ambient session, or (nil, nil) when no
	// session is held or the provider reports it expired.
	CurrentSession(ctx context.Context) (*domain.Session, error)

	// SignOut tears down the ambient session with the provider. It is
	// idempotent: with no session held it returns nil.
	SignOut(ctx context.Context) error

	// OnSessionChange registers a callback invoked with the new session (or
	// nil) whenever the ambient session changes. The returned subscription
	// must be released with Unsubscribe.
	OnSessionChange(fn func(*domain.Session)) Subscription
}

// Subscription is a held session-change registration with scoped release.
type Subscription interface {
	Unsubscribe()
}
