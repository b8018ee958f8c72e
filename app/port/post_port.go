package port

//go:generate mockgen -source=post_port.go -destination=../mocks/mock_post_port.go

import (
	"context"

	"blog-service/app/domain"

	"github.com/google/uuid"
)

// PostRepository is the post table access interface. List results are ordered
// newest first; reads join the author profile.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListPublished(ctx context.Context) ([]*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
}

// PostUsecase defines the post browsing and publishing business logic.
type PostUsecase interface {
	Publish(ctx context.Context, authorID, title, content string) (*domain.Post, error)
	FrontPage(ctx context.Context) (*domain.FrontPage, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AuthorPage(ctx context.Context, username string) (*domain.AuthorPage, error)
}
