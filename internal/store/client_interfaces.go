package store

import (
	"context"

	"github.com/MKhiriev/creator-hub/models"
)

// LocalStateRepository is the client-side persistence contract. It keeps the
// CLI's session and small key/value preferences in a local SQLite database so
// they survive between command invocations.
type LocalStateRepository interface {
	// SaveSession stores the given session, replacing any previous one.
	SaveSession(ctx context.Context, session models.LocalSession) error

	// GetSession returns the stored session, or ErrLocalSessionNotFound
	// when the user has never logged in (or has logged out).
	GetSession(ctx context.Context) (models.LocalSession, error)

	// ClearSession removes the stored session. Clearing an absent session
	// is not an error.
	ClearSession(ctx context.Context) error

	// SetPreference stores a named preference value, replacing any
	// previous value under the same name.
	SetPreference(ctx context.Context, name string, value string) error

	// GetPreference returns the value stored under name, or
	// ErrPreferenceNotFound.
	GetPreference(ctx context.Context, name string) (string, error)
}
