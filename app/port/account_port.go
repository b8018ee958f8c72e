package port

//go:generate mockgen -source=account_port.go -destination=../mocks/mock_account_port.go

import (
	"context"

	"blog-service/app/domain"
)

// AccountUsecase orchestrates registration, login and sign-out as
// atomic-from-the-caller's-perspective operations over the credential gateway
// and the profile store. Failures are always *domain.AccountError values.
type AccountUsecase interface {
	Register(ctx context.Context, email, password, username string) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	SignOut(ctx context.Context) error
}

// SessionState is what the session observer publishes: the current identity
// (nil when signed out) and whether the initial session fetch has resolved.
type SessionState struct {
	Identity *domain.Identity
	Ready    bool
}

// SessionPublisher exposes the ambient session state to UI collaborators.
type SessionPublisher interface {
	// Current returns the last published state.
	Current() SessionState

	// Subscribe registers a callback invoked with every state change,
	// including the transition to ready. Release with Unsubscribe.
	Subscribe(fn func(SessionState)) Subscription
}
