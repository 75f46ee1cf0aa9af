package models

import (
	"strings"
	"time"
)

// Room represents a meeting room within an office floor
type Room struct {
	ID             string     `gorm:"primaryKey;size:100" json:"id"`
	Office         string     `gorm:"size:50;not null;index" json:"office"`
	Floor          string     `gorm:"size:10;not null" json:"floor"`
	Number         string     `gorm:"size:50;not null" json:"number"`
	Equipment      Equipment  `gorm:"embedded" json:"equipment"`
	LastReviewDate *time.Time `gorm:"column:last_review_date" json:"lastReviewDate"`
	LastNote       string     `gorm:"type:text" json:"lastNote"`
	CreatedAt      time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// History holds the room's reviews in insertion (chronological)
	// order. Entries are append-only.
	History []Review `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE" json:"history"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// RoomID derives the registry-wide unique id for an office/number pair,
// e.g. ("MG", "9.2") -> "mg-9.2".
func RoomID(office, number string) string {
	return strings.ToLower(office + "-" + number)
}

// Reviewed reports whether the room has at least one recorded review.
func (r Room) Reviewed() bool {
	return r.LastReviewDate != nil
}
