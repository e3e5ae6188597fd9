package store

import (
	"github.com/MKhiriev/creator-hub/internal/logger"
)

// ClientStorages bundles the client-side repositories.
type ClientStorages struct {
	LocalStateRepository
}

func NewClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		LocalStateRepository: NewLocalStateRepository(db, log),
	}
}
