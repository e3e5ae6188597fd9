package store

import (
	"context"

	"github.com/MKhiriev/creator-hub/models"
	"github.com/google/uuid"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the canonical database
	// representation. Duplicate email or username surfaces as
	// ErrEmailAlreadyExists / ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its email address.
	// Returns ErrUserNotFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProfileRepository is the data-access contract for creator profiles.
// Every returned profile carries the owner's username joined from the
// users table.
type ProfileRepository interface {
	// CreateProfile persists a new profile. A second profile for the same
	// owner surfaces as ErrProfileAlreadyExists.
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// GetByUserID returns the profile owned by the given user, or
	// ErrProfileNotFound.
	GetByUserID(ctx context.Context, userID uuid.UUID) (models.Profile, error)

	// GetByUsername returns the profile owned by the user with the given
	// username, or ErrProfileNotFound.
	GetByUsername(ctx context.Context, username string) (models.Profile, error)

	// GetAll returns every profile in stable insertion order.
	GetAll(ctx context.Context) ([]models.Profile, error)

	// UpdateProfile applies a partial update to the profile owned by the
	// given user and returns the updated row, or ErrProfileNotFound.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.Profile, error)
}
