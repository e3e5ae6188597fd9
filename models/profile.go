package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public-facing creator record owned by exactly one user.
// Read access is public; write access belongs to the owning user only.
type Profile struct {
	// ID is the unique identifier of the profile.
	ID uuid.UUID `json:"id"`

	// UserID is the identifier of the owning user.
	// A unique constraint on this column enforces the 1:1 user↔profile rule.
	UserID uuid.UUID `json:"userId"`

	// Name is the display name, 2 to 100 characters.
	Name string `json:"name"`

	// Bio is an optional free-text description, at most 500 characters.
	// nil means the bio was never set or has been cleared.
	Bio *string `json:"bio"`

	// ProfileImageURL is an optional avatar URL.
	// Must be a well-formed absolute URL when present.
	ProfileImageURL *string `json:"profileImageUrl"`

	// Skills is the ordered list of skill labels.
	// Duplicates are permitted; order is preserved exactly as submitted.
	Skills []string `json:"skills"`

	// CreatedAt is the timestamp when the profile was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updatedAt"`

	// Username is the owner's handle, joined in for public display.
	Username string `json:"username,omitempty"`
}

// ProfileUpdate carries partial-update criteria for a single profile.
// Only non-nil fields are applied (partial update support).
type ProfileUpdate struct {
	// Name replaces the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Bio replaces the bio when non-nil. An explicit empty string clears it.
	Bio *string `json:"bio,omitempty"`

	// ProfileImageURL replaces the avatar URL when non-nil.
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`

	// Skills replaces the entire skills list atomically when non-nil.
	// There is no merge semantics.
	Skills *[]string `json:"skills,omitempty"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
