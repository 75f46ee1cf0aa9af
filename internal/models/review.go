package models

import "time"

// Review is one immutable inspection record appended to a room's history.
// Entries are never edited or removed; correcting a mistake means
// recording a new review.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	RoomID     string    `gorm:"size:100;not null;index" json:"-"`
	ReviewedAt time.Time `gorm:"not null" json:"date"`
	Equipment  Equipment `gorm:"embedded" json:"equipment"`
	Note       string    `gorm:"type:text" json:"note"`

	// Photo carries the raw image bytes when the caller keeps the binary
	// inline (file-backed store, library use). The server variant stores
	// the image on disk and keeps only PhotoRef.
	Photo    []byte `gorm:"-" json:"photo,omitempty"`
	PhotoRef string `gorm:"size:255" json:"photoRef,omitempty"`
}

// TableName specifies the table name for Review model
func (Review) TableName() string {
	return "room_reviews"
}

// HasPhoto reports whether the review carries an image, inline or by
// reference.
func (r Review) HasPhoto() bool {
	return len(r.Photo) > 0 || r.PhotoRef != ""
}
