package registry

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"room-review-backend/internal/config"
	"room-review-backend/internal/models"
)

// Filter narrows the room list. Zero-valued fields are ignored. Text is a
// case-insensitive substring match against room number, office code and
// last note; any one of them matching includes the room.
type Filter struct {
	Office string
	Floor  string
	Text   string
}

// ListRooms returns the rooms matching the filter, sorted by floor (ground
// floor first, then numeric floors ascending, non-parseable labels last)
// and by the numeric sequence suffix within a floor. The sort is stable:
// ties keep insertion order.
func (r *Registry) ListRooms(f Filter) []models.Room {
	query := strings.ToLower(strings.TrimSpace(f.Text))

	var out []models.Room
	for _, room := range r.rooms {
		if f.Office != "" && room.Office != f.Office {
			continue
		}
		if f.Floor != "" && room.Floor != f.Floor {
			continue
		}
		if query != "" && !matchesText(room, query) {
			continue
		}
		out = append(out, room)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := floorRank(out[i].Floor), floorRank(out[j].Floor)
		if ri != rj {
			return ri < rj
		}
		si, _ := sequenceOf(out[i].Number)
		sj, _ := sequenceOf(out[j].Number)
		return si < sj
	})

	return out
}

// DateRange bounds a history query. Both ends are optional and inclusive.
// An End carrying no time of day is treated as a calendar date and covers
// the whole day.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ListHistory returns a room's reviews within the range, newest first.
func (r *Registry) ListHistory(id string, dr DateRange) ([]models.Review, error) {
	room, ok := r.Get(id)
	if !ok {
		return nil, ErrNotFound
	}

	end := dr.End
	if end != nil && isMidnight(*end) {
		eod := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &eod
	}

	out := make([]models.Review, 0, len(room.History))
	for i := len(room.History) - 1; i >= 0; i-- {
		rev := room.History[i]
		if dr.Start != nil && rev.ReviewedAt.Before(*dr.Start) {
			continue
		}
		if end != nil && rev.ReviewedAt.After(*end) {
			continue
		}
		out = append(out, rev)
	}
	return out, nil
}

func matchesText(room models.Room, query string) bool {
	return strings.Contains(strings.ToLower(room.Number), query) ||
		strings.Contains(strings.ToLower(room.Office), query) ||
		strings.Contains(strings.ToLower(room.LastNote), query)
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// floorRank orders floor labels: ground floor, then numeric labels
// ascending, then everything unparseable.
func floorRank(floor string) int {
	if floor == config.GroundFloor {
		return -1 << 31
	}
	if n, err := strconv.Atoi(floor); err == nil {
		return n
	}
	return 1<<31 - 1
}
