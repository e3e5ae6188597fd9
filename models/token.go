package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set carried by every session token.
//
// It extends the standard registered claims (sub, iss, iat, exp) with the
// user's email and username so that caller identity can be reconstructed
// from the token alone, without a store lookup.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the account email of the token subject.
	Email string `json:"email"`

	// Username is the public handle of the token subject.
	Username string `json:"username"`
}

// Token wraps a JWT session token with convenience accessors for auth flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored in a cookie on the client side.
//
// UserID, Email and Username are parsed copies of the token claims cached
// after successful validation, so that downstream code does not have to
// re-inspect the claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Email is the account email extracted from the "email" claim.
	Email string `json:"-"`

	// Username is the handle extracted from the "username" claim.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
