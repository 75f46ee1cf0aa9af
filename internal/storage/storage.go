// Package storage defines the persistence contract for the room
// collection and provides the file-backed implementation. The gorm-backed
// implementation lives in internal/repository.
package storage

import (
	"errors"

	"room-review-backend/internal/models"
)

// ErrPersistence wraps any underlying I/O or schema failure. The caller's
// in-memory state is still valid when it is returned; saving may simply
// be retried.
var ErrPersistence = errors.New("persistence failure")

// Gateway loads and saves the full room collection, review history
// included. LoadAll returns an empty collection, not an error, when no
// prior data exists.
type Gateway interface {
	LoadAll() ([]models.Room, error)
	SaveAll(rooms []models.Room) error
}
