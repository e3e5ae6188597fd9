package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"

	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. Every read joins the "users" table so the returned
// [models.Profile] carries the owner's username.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile persists a new profile and returns the canonical database
// representation, username included.
//
// Error handling:
//   - unique_violation (23505) on profiles_user_id_key → [ErrProfileAlreadyExists].
//   - foreign_key_violation (23503) → [ErrUserNotFound]: the owning account
//     was deleted between authentication and the INSERT.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	row := r.db.QueryRowContext(ctx, createProfileQuery,
		profile.ID, profile.UserID, profile.Name, profile.Bio, profile.ProfileImageURL, pq.Array(profile.Skills))

	// create profile in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Bool("retryable", r.db.isRetryable(err)).Msg("error: row is nil")
		return models.Profile{}, classifyProfileConflict(err)
	}

	// scan saved profile from db
	saved, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: scanning error")
		return models.Profile{}, classifyProfileConflict(err)
	}

	return saved, nil
}

// GetByUserID returns the profile owned by the given user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProfileNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (models.Profile, error) {
	return r.getOne(ctx, "*profileRepository.GetByUserID", getProfileByUserIDQuery, userID)
}

// GetByUsername returns the profile owned by the user with the given
// username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProfileNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) GetByUsername(ctx context.Context, username string) (models.Profile, error) {
	return r.getOne(ctx, "*profileRepository.GetByUsername", getProfileByUsernameQuery, username)
}

// GetAll returns every profile ordered by creation time, oldest first.
func (r *profileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllProfilesQuery)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetAll").Bool("retryable", r.db.isRetryable(err)).Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			log.Err(err).Str("func", "*profileRepository.GetAll").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.GetAll").Msg("error iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return profiles, nil
}

// UpdateProfile applies a partial update to the profile owned by userID and
// returns the updated row. Fields absent from update keep their stored
// values; a present Skills slice replaces the stored array wholesale.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProfileNotFound]: the owner has no profile yet.
//   - Query construction failure → joined with [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error building update query")
		return models.Profile{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Bool("retryable", r.db.isRetryable(err)).Msg("error: row is nil")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// getOne runs a single-row profile query and maps the empty result set onto
// [ErrProfileNotFound].
func (r *profileRepository) getOne(ctx context.Context, funcName, query string, arg any) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.isRetryable(err)).Msg("error: row is nil")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProfile reads one profile row in the canonical column order shared by
// all profile queries: profile columns first, the joined username last.
func scanProfile(row rowScanner) (models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Name,
		&profile.Bio,
		&profile.ProfileImageURL,
		pq.Array(&profile.Skills),
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.Username,
	)
	if err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// classifyProfileConflict maps a driver error from a profiles INSERT onto
// the repository's sentinel errors.
func classifyProfileConflict(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		if postgresConstraint(err) == "profiles_user_id_key" {
			return ErrProfileAlreadyExists
		}
	case pgerrcode.ForeignKeyViolation:
		return ErrUserNotFound
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
