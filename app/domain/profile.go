package domain

import (
	"regexp"
	"time"
)

// MinUsernameLength is the shortest username accepted at registration.
const MinUsernameLength = 3

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Profile is the application-level user record keyed by identity id. It is
// created exactly once, at registration, and is never deleted by the account
// lifecycle workflow.
type Profile struct {
	ID        string    `json:"id"` // identity id, primary key
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile creates a profile for an identity with validation.
func NewProfile(identityID, username string) (*Profile, error) {
	if identityID == "" {
		return nil, NewAccountError(KindProfileCreationFailed, "identity id is required", nil)
	}
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Profile{
		ID:        identityID,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateUsername enforces the registration username rules: at least
// MinUsernameLength characters, lowercase letters, digits and underscores
// only. It performs no remote calls.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLength {
		return NewAccountError(KindInvalidUsername,
			"username must be at least 3 characters long", nil)
	}
	if !usernamePattern.MatchString(username) {
		return NewAccountError(KindInvalidUsername,
			"username can only contain lowercase letters, numbers, and underscores", nil)
	}
	return nil
}
