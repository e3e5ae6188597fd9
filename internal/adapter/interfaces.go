// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the creator-hub server.
//
// The primary abstraction is [APIClient], which decouples the CLI client from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAPIClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/creator-hub/models"
)

// APIClient defines transport-agnostic communication with the creator-hub
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Signup or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account. On success it stores the returned
	// bearer token via SetToken.
	Signup(ctx context.Context, request models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// Logout discards the session on the server side and clears the stored
	// token.
	Logout(ctx context.Context) error

	// CreateProfile creates the caller's profile.
	CreateProfile(ctx context.Context, request models.CreateProfileRequest) (models.Profile, error)

	// MyProfile returns the caller's own profile, or nil when none exists.
	MyProfile(ctx context.Context) (*models.Profile, error)

	// UpdateProfile applies a partial update to the caller's profile.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)

	// ProfileByUsername fetches the public profile of the given username.
	ProfileByUsername(ctx context.Context, username string) (models.Profile, error)

	// ListProfiles fetches every public profile, optionally narrowed by a
	// comma-separated skill filter.
	ListProfiles(ctx context.Context, skillsFilter string) ([]models.Profile, error)
}
