package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"room-review-backend/internal/models"
	"room-review-backend/internal/registry"
	"room-review-backend/internal/storage"
)

// ErrNothingSelected is returned when an export request resolves to an
// explicitly empty selection. The formatters themselves accept empty
// input; only the caller-facing action fails.
var ErrNothingSelected = errors.New("no reviews selected")

// Auditor records registry mutations. The gorm audit repository satisfies
// this; the file driver runs with NopAuditor.
type Auditor interface {
	Record(action string, details string) error
}

// NopAuditor discards audit entries.
type NopAuditor struct{}

func (NopAuditor) Record(string, string) error { return nil }

// RoomService orchestrates the registry, the persistence gateway and the
// audit trail. Mutations follow the optimistic-local-state policy: the
// registry is updated first and a persistence failure is surfaced without
// rolling the memory state back, so the caller may retry the save.
type RoomService struct {
	registry *registry.Registry
	store    storage.Gateway
	audit    Auditor
}

func NewRoomService(reg *registry.Registry, store storage.Gateway, audit Auditor) *RoomService {
	if audit == nil {
		audit = NopAuditor{}
	}
	return &RoomService{
		registry: reg,
		store:    store,
		audit:    audit,
	}
}

// CreateRoom registers a room and persists the collection. On a
// persistence failure the created room is returned together with the
// error.
func (s *RoomService) CreateRoom(office, floor string) (models.Room, error) {
	room, err := s.registry.CreateRoom(office, floor)
	if err != nil {
		return models.Room{}, err
	}

	details := fmt.Sprintf("Created room %s (office: %s, floor: %s)", room.Number, room.Office, room.Floor)
	if err := s.audit.Record("room_create", details); err != nil {
		log.Printf("Warning: failed to write audit log: %v", err)
	}

	return room, s.persist()
}

// DeleteRoom removes a room. Absent ids are a no-op, matching the
// registry's idempotent delete.
func (s *RoomService) DeleteRoom(id string) error {
	if !s.registry.DeleteRoom(id) {
		return nil
	}

	if err := s.audit.Record("room_delete", fmt.Sprintf("Deleted room %s", id)); err != nil {
		log.Printf("Warning: failed to write audit log: %v", err)
	}

	return s.persist()
}

// BulkDeleteResult reports the aggregate outcome of a bulk delete.
// Partial successes are kept; nothing is rolled back.
type BulkDeleteResult struct {
	Requested int `json:"requested"`
	Deleted   int `json:"deleted"`
}

// DeleteRooms removes every listed room independently.
func (s *RoomService) DeleteRooms(ids []string) (BulkDeleteResult, error) {
	result := BulkDeleteResult{Requested: len(ids)}
	result.Deleted = s.registry.DeleteRooms(ids)
	if result.Deleted == 0 {
		return result, nil
	}

	details := fmt.Sprintf("Deleted %d of %d requested rooms", result.Deleted, result.Requested)
	if err := s.audit.Record("room_delete", details); err != nil {
		log.Printf("Warning: failed to write audit log: %v", err)
	}

	return result, s.persist()
}

// RecordReview appends a review to the room's history and persists.
func (s *RoomService) RecordReview(id string, in registry.ReviewInput) (models.Review, error) {
	review, err := s.registry.RecordReview(id, in)
	if err != nil {
		return models.Review{}, err
	}

	details := fmt.Sprintf("Reviewed room %s at %s", id, review.ReviewedAt.Format(time.RFC3339))
	if err := s.audit.Record("room_review", details); err != nil {
		log.Printf("Warning: failed to write audit log: %v", err)
	}

	return review, s.persist()
}

// Room returns a single room by id.
func (s *RoomService) Room(id string) (models.Room, error) {
	room, ok := s.registry.Get(id)
	if !ok {
		return models.Room{}, fmt.Errorf("%w: %s", registry.ErrNotFound, id)
	}
	return room, nil
}

// Rooms returns the filtered, sorted room list.
func (s *RoomService) Rooms(f registry.Filter) []models.Room {
	return s.registry.ListRooms(f)
}

// History returns a room's reviews within the range, newest first.
func (s *RoomService) History(id string, dr registry.DateRange) ([]models.Review, error) {
	return s.registry.ListHistory(id, dr)
}

// Save persists the current collection. Exposed so callers can retry
// after a persistence failure.
func (s *RoomService) Save() error {
	return s.persist()
}

func (s *RoomService) persist() error {
	return s.store.SaveAll(s.registry.Rooms())
}
