package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"blog-service/app/domain"
	"blog-service/app/port"
)

// PostUseCase implements the blog content operations
type PostUseCase struct {
	postRepo    port.PostRepository
	profileRepo port.ProfileRepository
	sanitizer   *bluemonday.Policy
	logger      *slog.Logger
}

// NewPostUseCase creates a new PostUseCase instance. Post content is
// user-generated, so it goes through a UGC sanitization policy before it is
// stored.
func NewPostUseCase(
	postRepo port.PostRepository,
	profileRepo port.ProfileRepository,
	logger *slog.Logger,
) *PostUseCase {
	return &PostUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		sanitizer:   bluemonday.UGCPolicy(),
		logger:      logger.With("component", "post_usecase"),
	}
}

// Publish stores a new published post for the given author
func (uc *PostUseCase) Publish(ctx context.Context, authorID, title, content string) (*domain.Post, error) {
	post, err := domain.NewPost(authorID, title, uc.sanitizer.Sanitize(content))
	if err != nil {
		return nil, err
	}

	if err := uc.postRepo.Insert(ctx, post); err != nil {
		return nil, err
	}

	uc.logger.Info("post published", "post_id", post.ID, "author_id", authorID)
	return post, nil
}

// FrontPage returns all published posts newest first, with the newest one
// split out as the featured post
func (uc *PostUseCase) FrontPage(ctx context.Context) (*domain.FrontPage, error) {
	posts, err := uc.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	frontPage := domain.SplitFeatured(posts)
	return &frontPage, nil
}

// Get returns a single published post
func (uc *PostUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

// AuthorPage returns an author's profile together with their published posts
func (uc *PostUseCase) AuthorPage(ctx context.Context, username string) (*domain.AuthorPage, error) {
	profile, err := uc.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.ListByAuthor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthorPage{Profile: profile, Posts: posts}, nil
}
