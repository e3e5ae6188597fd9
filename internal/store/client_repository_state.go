package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/models"
)

var (
	// ErrLocalSessionNotFound is returned when no session has been stored
	// locally, i.e. the user has never logged in or has since logged out.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrPreferenceNotFound is returned when a preference lookup targets a
	// name that has never been stored.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// sessionStateKey is the fixed local_state key under which the session is
// kept. Preferences live under preferencePrefix + name so they can never
// collide with it.
const (
	sessionStateKey  = "session"
	preferencePrefix = "pref:"
)

type localStateRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLocalStateRepository(db *DB, log *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		logger: log,
		db:     db,
	}
}

// SaveSession implements [LocalStateRepository].
func (r *localStateRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		r.logger.Err(err).Str("func", "SaveSession").Msg("error marshalling session")
		return fmt.Errorf("error marshalling session: %w", err)
	}

	return r.set(ctx, sessionStateKey, string(payload))
}

// GetSession implements [LocalStateRepository].
func (r *localStateRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	value, err := r.get(ctx, sessionStateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.LocalSession{}, err
	}

	var session models.LocalSession
	if err = json.Unmarshal([]byte(value), &session); err != nil {
		r.logger.Err(err).Str("func", "GetSession").Msg("error unmarshalling session")
		return models.LocalSession{}, fmt.Errorf("error unmarshalling session: %w", err)
	}

	return session, nil
}

// ClearSession implements [LocalStateRepository].
func (r *localStateRepository) ClearSession(ctx context.Context) error {
	return r.delete(ctx, sessionStateKey)
}

// SetPreference implements [LocalStateRepository].
func (r *localStateRepository) SetPreference(ctx context.Context, name string, value string) error {
	return r.set(ctx, preferencePrefix+name, value)
}

// GetPreference implements [LocalStateRepository].
func (r *localStateRepository) GetPreference(ctx context.Context, name string) (string, error) {
	value, err := r.get(ctx, preferencePrefix+name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}

	return value, err
}

func (r *localStateRepository) set(ctx context.Context, key string, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertLocalStateQuery, key, value); err != nil {
		r.logger.Err(err).Str("func", "set").Str("key", key).Msg("error writing local state")
		return errors.Join(ErrExecutingQuery, err)
	}

	return nil
}

func (r *localStateRepository) get(ctx context.Context, key string) (string, error) {
	var value string

	err := r.db.QueryRowContext(ctx, getLocalStateQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	if err != nil {
		r.logger.Err(err).Str("func", "get").Str("key", key).Msg("error reading local state")
		return "", errors.Join(ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *localStateRepository) delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalStateQuery, key); err != nil {
		r.logger.Err(err).Str("func", "delete").Str("key", key).Msg("error deleting local state")
		return errors.Join(ErrExecutingQuery, err)
	}

	return nil
}
