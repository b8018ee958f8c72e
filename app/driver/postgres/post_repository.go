package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"blog-service/app/domain"
	"blog-service/app/port"
)

// PostRepository implements port.PostRepository for PostgreSQL
type PostRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db DatabaseIface, logger *slog.Logger) port.PostRepository {
	return &PostRepository{
		db:     db,
		logger: logger.With("component", "post_repository"),
	}
}

// Insert stores a new post row
func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (
			id, title, content, author_id, published, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	r.logger.Info("inserting post", "post_id", post.ID, "author_id", post.AuthorID)

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.AuthorID,
		post.Published,
		post.CreatedAt,
	)

	if err != nil {
		r.logger.Error("failed to insert post", "post_id", post.ID, "error", err)
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a single published post with its author profile
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT
			p.id, p.title, p.content, p.author_id, p.published, p.created_at,
			pr.id, pr.username, pr.full_name, pr.avatar_url, pr.created_at, pr.updated_at
		FROM posts p
		JOIN profiles pr ON pr.id = p.author_id
		WHERE p.id = $1 AND p.published = true`

	post := &domain.Post{Author: &domain.Profile{}}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.Published,
		&post.CreatedAt,
		&post.Author.ID,
		&post.Author.Username,
		&post.Author.FullName,
		&post.Author.AvatarURL,
		&post.Author.CreatedAt,
		&post.Author.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		r.logger.Error("failed to query post", "post_id", id, "error", err)
		return nil, fmt.Errorf("failed to query post: %w", err)
	}

	return post, nil
}

// ListPublished retrieves all published posts newest first, authors included
func (r *PostRepository) ListPublished(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT
			p.id, p.title, p.content, p.author_id, p.published, p.created_at,
			pr.id, pr.username, pr.full_name, pr.avatar_url, pr.created_at, pr.updated_at
		FROM posts p
		JOIN profiles pr ON pr.id = p.author_id
		WHERE p.published = true
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to query published posts", "error", err)
		return nil, fmt.Errorf("failed to query published posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListByAuthor retrieves an author's published posts newest first
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	query := `
		SELECT
			p.id, p.title, p.content, p.author_id, p.published, p.created_at,
			pr.id, pr.username, pr.full_name, pr.avatar_url, pr.created_at, pr.updated_at
		FROM posts p
		JOIN profiles pr ON pr.id = p.author_id
		WHERE p.author_id = $1 AND p.published = true
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		r.logger.Error("failed to query posts by author", "author_id", authorID, "error", err)
		return nil, fmt.Errorf("failed to query posts by author: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{Author: &domain.Profile{}}
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.Published,
			&post.CreatedAt,
			&post.Author.ID,
			&post.Author.Username,
			&post.Author.FullName,
			&post.Author.AvatarURL,
			&post.Author.CreatedAt,
			&post.Author.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read post rows: %w", err)
	}
	return posts, nil
}
