package store

import (
	"weatherfav/internal/logger"
)

// Storages bundles all repositories backed by the document store.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
