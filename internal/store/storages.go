package store

import "github.com/MKhiriev/creator-hub/internal/logger"

// Storages aggregates every repository the application uses.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
	}
}
