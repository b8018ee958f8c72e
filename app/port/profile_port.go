package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go

import (
	"context"

	"blog-service/app/domain"
)

// ProfileRepository is the Profile Store client interface. Lookups signal the
// well-defined "no rows" condition with domain.ErrProfileNotFound; any other
// error means the store could not answer. Insert surfaces the username
// unique-constraint violation as domain.ErrUsernameTaken.
type ProfileRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	Insert(ctx context.Context, profile *domain.Profile) error
}
