package service

import (
	"sort"
	"time"

	"room-review-backend/internal/registry"
)

// DashboardStats summarizes the registry for the overview screen.
type DashboardStats struct {
	TotalRooms    int            `json:"totalRooms"`
	Reviewed      int            `json:"reviewed"`
	NeverReviewed int            `json:"neverReviewed"`
	LatestReviews []LatestReview `json:"latestReviews"`
}

// LatestReview is one line of the "recent activity" list.
type LatestReview struct {
	Number     string    `json:"number"`
	Floor      string    `json:"floor"`
	Office     string    `json:"office"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

// Dashboard computes room totals and the five most recent reviews.
func (s *RoomService) Dashboard() DashboardStats {
	rooms := s.registry.ListRooms(registry.Filter{})

	stats := DashboardStats{TotalRooms: len(rooms)}

	var latest []LatestReview
	for _, room := range rooms {
		if !room.Reviewed() {
			stats.NeverReviewed++
			continue
		}
		stats.Reviewed++
		latest = append(latest, LatestReview{
			Number:     room.Number,
			Floor:      room.Floor,
			Office:     room.Office,
			ReviewedAt: *room.LastReviewDate,
		})
	}

	sort.Slice(latest, func(i, j int) bool {
		return latest[i].ReviewedAt.After(latest[j].ReviewedAt)
	})
	if len(latest) > 5 {
		latest = latest[:5]
	}
	stats.LatestReviews = latest

	return stats
}
