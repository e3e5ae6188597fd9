package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/creator-hub/models"
)

type AuthService interface {
	// Signup registers a new account and returns the persisted user.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login authenticates an existing account by email and password.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	// Create creates the profile owned by userID.
	Create(ctx context.Context, userID uuid.UUID, request models.CreateProfileRequest) (models.Profile, error)

	// Update applies a partial update to the profile owned by userID.
	Update(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.Profile, error)

	// GetMine returns the caller's own profile, or nil when none exists yet.
	GetMine(ctx context.Context, userID uuid.UUID) (*models.Profile, error)

	// GetByUsername returns the public profile of the given username.
	GetByUsername(ctx context.Context, username string) (models.Profile, error)

	// ListAll returns every profile, optionally narrowed by a comma-separated
	// skill filter. A profile matches when any of its skills contains any of
	// the filter terms, case-insensitively.
	ListAll(ctx context.Context, skillsFilter string) ([]models.Profile, error)
}
