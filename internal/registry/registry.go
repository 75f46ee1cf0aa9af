package registry

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"room-review-backend/internal/config"
	"room-review-backend/internal/models"
)

// Registry owns the in-memory room collection and enforces the office
// configuration: floor capacity, room uniqueness and first-fit numbering.
// It is the only mutator of rooms and their review histories.
//
// Operations are synchronous and single-writer; persistence is the
// caller's concern (see storage.Gateway).
type Registry struct {
	offices config.Offices
	rooms   []models.Room
	now     func() time.Time
}

// New builds a registry over an office configuration, seeded with rooms
// previously loaded from a persistence gateway.
func New(offices config.Offices, rooms []models.Room) *Registry {
	return &Registry{
		offices: offices,
		rooms:   append([]models.Room(nil), rooms...),
		now:     time.Now,
	}
}

// SetClock overrides the timestamp source. Used by tests.
func (r *Registry) SetClock(now func() time.Time) {
	r.now = now
}

// Offices exposes the static office configuration.
func (r *Registry) Offices() config.Offices {
	return r.offices
}

// Rooms returns a copy of the full collection in insertion order.
func (r *Registry) Rooms() []models.Room {
	return append([]models.Room(nil), r.rooms...)
}

// Len returns the number of registered rooms.
func (r *Registry) Len() int {
	return len(r.rooms)
}

// Get returns the room with the given id.
func (r *Registry) Get(id string) (models.Room, bool) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			return r.rooms[i], true
		}
	}
	return models.Room{}, false
}

// CreateRoom registers a new room on an office floor. The room number is
// assigned first-fit via NextRoomNumber. All validation happens before
// the collection is touched.
func (r *Registry) CreateRoom(office, floor string) (models.Room, error) {
	cfg, ok := r.offices.Office(office)
	if !ok {
		return models.Room{}, fmt.Errorf("%w: %q", ErrUnknownOffice, office)
	}
	if _, ok := cfg.Floors[floor]; !ok {
		return models.Room{}, fmt.Errorf("%w: office %s has no floor %q", ErrUnknownFloor, office, floor)
	}

	capacity := cfg.Floors[floor].MaxRooms
	if len(r.roomsOn(office, floor)) >= capacity {
		return models.Room{}, fmt.Errorf("%w: floor %s of %s holds at most %d rooms", ErrFloorFull, floor, office, capacity)
	}

	number := r.NextRoomNumber(office, floor)
	id := models.RoomID(office, number)
	// The numbering algorithm never hands out a taken number, but the
	// uniqueness invariant is checked anyway.
	if _, exists := r.Get(id); exists {
		return models.Room{}, fmt.Errorf("%w: %s", ErrDuplicateRoom, id)
	}

	room := models.Room{
		ID:        id,
		Office:    office,
		Floor:     floor,
		Number:    number,
		CreatedAt: r.now(),
	}
	r.rooms = append(r.rooms, room)
	return room, nil
}

// NextRoomNumber computes the smallest unused positive sequence on the
// floor and formats it as "<floor>.<n>". First fit, not append-only: a
// sequence freed by deletion is reused by the next create.
func (r *Registry) NextRoomNumber(office, floor string) string {
	used := make(map[int]bool)
	for _, room := range r.roomsOn(office, floor) {
		if seq, ok := sequenceOf(room.Number); ok {
			used[seq] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return fmt.Sprintf("%s.%d", floor, n)
}

// DeleteRoom removes a room along with its history. Deleting an absent id
// is a no-op; the return value reports whether anything was removed.
func (r *Registry) DeleteRoom(id string) bool {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteRooms removes every room in ids, treating each one independently.
// It returns how many rooms were actually removed.
func (r *Registry) DeleteRooms(ids []string) int {
	removed := 0
	for _, id := range ids {
		if r.DeleteRoom(id) {
			removed++
		}
	}
	return removed
}

// ReviewInput carries the data of one inspection. Equipment is a full
// snapshot: flags not set by the caller are recorded as false.
type ReviewInput struct {
	Equipment models.Equipment
	Note      string
	Photo     []byte
	PhotoRef  string
}

// RecordReview appends an immutable review to the room's history and
// updates the room's derived state (equipment, last review date, last
// note). This is the only mutation a room sees after creation.
func (r *Registry) RecordReview(id string, in ReviewInput) (models.Review, error) {
	for i := range r.rooms {
		if r.rooms[i].ID != id {
			continue
		}
		review := models.Review{
			RoomID:     id,
			ReviewedAt: r.now(),
			Equipment:  in.Equipment,
			Note:       in.Note,
			Photo:      in.Photo,
			PhotoRef:   in.PhotoRef,
		}
		room := &r.rooms[i]
		room.History = append(room.History, review)
		room.Equipment = in.Equipment
		reviewedAt := review.ReviewedAt
		room.LastReviewDate = &reviewedAt
		room.LastNote = in.Note
		return review, nil
	}
	return models.Review{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (r *Registry) roomsOn(office, floor string) []models.Room {
	var out []models.Room
	for _, room := range r.rooms {
		if room.Office == office && room.Floor == floor {
			out = append(out, room)
		}
	}
	return out
}

// sequenceOf extracts the positive integer after the last "." of a room
// number. Malformed numbers are ignored by the numbering algorithm.
func sequenceOf(number string) (int, bool) {
	idx := strings.LastIndex(number, ".")
	if idx < 0 || idx == len(number)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(number[idx+1:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
