package models

// AuthResponse is the payload returned by the signup and login endpoints.
// The same token is also set as the http-only "token" cookie so that both
// header-based and cookie-based clients can authenticate follow-up requests.
type AuthResponse struct {
	// AccessToken is the signed session JWT.
	AccessToken string `json:"accessToken"`

	// User contains the public fields of the authenticated account.
	// The password hash is never included.
	User User `json:"user"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	// Message is a caller-safe description of the failure.
	Message string `json:"message"`

	// Fields maps field names to validation messages.
	// Present only for validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}
