package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUserQuery] which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation (23505) on users_email_key → [ErrEmailAlreadyExists].
//   - unique_violation (23505) on users_username_key → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createUserQuery, user.ID, user.Email, user.Username, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Bool("retryable", r.db.isRetryable(err)).Msg("error: row is nil")
		return models.User{}, classifyUserConflict(err)
	}

	var saved models.User
	// scan saved user from db
	if err := row.Scan(&saved.ID, &saved.Email, &saved.Username, &saved.PasswordHash, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, classifyUserConflict(err)
	}

	return saved, nil
}

// FindUserByEmail retrieves the account whose email matches the given value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmailQuery, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Bool("retryable", r.db.isRetryable(err)).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&found.ID, &found.Email, &found.Username, &found.PasswordHash, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// classifyUserConflict maps a driver error from a users INSERT onto the
// repository's sentinel errors. Unique violations are told apart by the
// violated constraint name; everything else is wrapped as unexpected.
func classifyUserConflict(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		switch postgresConstraint(err) {
		case "users_email_key":
			return ErrEmailAlreadyExists
		case "users_username_key":
			return ErrUsernameAlreadyExists
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
