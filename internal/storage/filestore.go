package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"room-review-backend/internal/models"
)

// schemaVersion is bumped whenever the persisted document layout changes.
// Loading a document with a different version fails instead of silently
// producing an empty registry.
const schemaVersion = 1

type fileDocument struct {
	Version int           `json:"version"`
	Rooms   []models.Room `json:"rooms"`
}

// FileStore persists the room collection as a single versioned JSON
// document. Review history and inline photos are embedded in each room.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll reads the collection. A missing file is the empty state, not an
// error; a malformed or wrong-version document is a persistence failure.
func (s *FileStore) LoadAll() ([]models.Room, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrPersistence, s.path, err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrPersistence, s.path, err)
	}
	if doc.Version != schemaVersion {
		return nil, fmt.Errorf("%w: %s has schema version %d, expected %d", ErrPersistence, s.path, doc.Version, schemaVersion)
	}
	return doc.Rooms, nil
}

// SaveAll overwrites the collection. The document is written to a
// temporary file and renamed into place so a crash mid-save never
// corrupts previously readable data.
func (s *FileStore) SaveAll(rooms []models.Room) error {
	if rooms == nil {
		rooms = []models.Room{}
	}
	doc := fileDocument{Version: schemaVersion, Rooms: rooms}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding rooms: %v", ErrPersistence, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrPersistence, dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}
