package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-service/app/domain"
	"blog-service/app/port"
)

// uniqueViolation is the SQLSTATE raised when an insert hits a unique constraint
const uniqueViolation = "23505"

// ProfileRepository implements port.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// FindByUsername retrieves a profile by its username.
// Returns domain.ErrProfileNotFound when no row matches.
func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, created_at, updated_at
		FROM profiles
		WHERE username = $1`

	profile := &domain.Profile{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&profile.ID,
		&profile.Username,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to query profile by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to query profile by username: %w", err)
	}

	return profile, nil
}

// FindByID retrieves a profile by its identity ID.
// Returns domain.ErrProfileNotFound when no row matches.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	profile := &domain.Profile{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Username,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to query profile by id", "profile_id", id, "error", err)
		return nil, fmt.Errorf("failed to query profile by id: %w", err)
	}

	return profile, nil
}

// Insert stores a new profile row. The unique constraint on username is the
// authoritative guard against duplicates; a violation maps to
// domain.ErrUsernameTaken.
func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, username, full_name, avatar_url, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	r.logger.Info("inserting profile", "profile_id", profile.ID, "username", profile.Username)

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Username,
		profile.FullName,
		profile.AvatarURL,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrUsernameTaken
		}
		r.logger.Error("failed to insert profile", "profile_id", profile.ID, "error", err)
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	r.logger.Info("profile inserted", "profile_id", profile.ID, "username", profile.Username)
	return nil
}
