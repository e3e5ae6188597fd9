package models

// SignupRequest is the request body accepted by POST /auth/signup.
type SignupRequest struct {
	// Email must be a syntactically valid address, unique across accounts.
	Email string `json:"email"`

	// Password must be at least 8 characters. Transmitted once, hashed
	// immediately, never stored or logged in plain form.
	Password string `json:"password"`

	// Username must be at least 3 characters of [A-Za-z0-9_-], unique.
	Username string `json:"username"`
}

// LoginRequest is the request body accepted by POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateProfileRequest is the request body accepted by POST /profile.
type CreateProfileRequest struct {
	// Name is required, 2 to 100 characters.
	Name string `json:"name"`

	// Bio is optional, at most 500 characters.
	Bio *string `json:"bio,omitempty"`

	// ProfileImageURL is optional; must parse as an absolute URL when set.
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`

	// Skills is the ordered list of skill labels, at most 20 entries.
	Skills []string `json:"skills"`
}
