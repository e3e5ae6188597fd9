package models

import "time"

// LocalSession is the client-side record of an authenticated session.
// The CLI persists it between invocations so that a user does not have to
// log in before every command.
type LocalSession struct {
	// Email is the account the session belongs to.
	Email string `json:"email"`

	// Username is the public handle of the logged-in user.
	Username string `json:"username"`

	// Token is the compact JWS access token issued at login.
	Token string `json:"token"`

	// SavedAt records when the session was stored locally. The token itself
	// carries the authoritative expiry; SavedAt is informational.
	SavedAt time.Time `json:"savedAt"`
}
