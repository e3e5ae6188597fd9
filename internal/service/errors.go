package service

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure, whether the
	// account does not exist or the password does not match. The two cases
	// are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")
)
