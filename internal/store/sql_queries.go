package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/MKhiriev/creator-hub/models"
)

// SQL queries executed by the repositories. Every profile query joins the
// users table so that the owner's username travels with the profile row.
const (
	createUserQuery = `
INSERT INTO users (id, email, username, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id, email, username, password_hash, created_at, updated_at;`

	findUserByEmailQuery = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
WHERE email = $1;`

	createProfileQuery = `
WITH inserted AS (
    INSERT INTO profiles (id, user_id, name, bio, profile_image_url, skills)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, name, bio, profile_image_url, skills, created_at, updated_at
)
SELECT i.id, i.user_id, i.name, i.bio, i.profile_image_url, i.skills, i.created_at, i.updated_at, u.username
FROM inserted i
JOIN users u ON u.id = i.user_id;`

	getProfileByUserIDQuery = `
SELECT p.id, p.user_id, p.name, p.bio, p.profile_image_url, p.skills, p.created_at, p.updated_at, u.username
FROM profiles p
JOIN users u ON u.id = p.user_id
WHERE p.user_id = $1;`

	getProfileByUsernameQuery = `
SELECT p.id, p.user_id, p.name, p.bio, p.profile_image_url, p.skills, p.created_at, p.updated_at, u.username
FROM profiles p
JOIN users u ON u.id = p.user_id
WHERE u.username = $1;`

	getAllProfilesQuery = `
SELECT p.id, p.user_id, p.name, p.bio, p.profile_image_url, p.skills, p.created_at, p.updated_at, u.username
FROM profiles p
JOIN users u ON u.id = p.user_id
ORDER BY p.created_at;`
)

// buildUpdateProfileQuery assembles a partial UPDATE for the profile owned by
// userID. Only the fields present in update produce SET clauses; a nil field
// leaves the stored value untouched. The returned query joins the users table
// so the RETURNING clause can include the owner's username.
func buildUpdateProfileQuery(userID uuid.UUID, update models.ProfileUpdate) (string, []any, error) {
	builder := sq.Update("profiles").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.ProfileImageURL != nil {
		// an empty string clears the avatar, stored as NULL so reads
		// return a null profileImageUrl rather than ""
		if *update.ProfileImageURL == "" {
			builder = builder.Set("profile_image_url", nil)
		} else {
			builder = builder.Set("profile_image_url", *update.ProfileImageURL)
		}
	}
	if update.Skills != nil {
		builder = builder.Set("skills", pq.Array(*update.Skills))
	}

	return builder.
		From("users").
		Where("users.id = profiles.user_id").
		Where(sq.Eq{"profiles.user_id": userID}).
		Suffix(`RETURNING profiles.id, profiles.user_id, profiles.name, profiles.bio, profiles.profile_image_url, profiles.skills, profiles.created_at, profiles.updated_at, users.username`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
