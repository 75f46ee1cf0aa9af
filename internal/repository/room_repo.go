package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"room-review-backend/internal/models"
	"room-review-backend/internal/storage"
)

// RoomRepository is the gorm-backed persistence gateway. Rooms live in the
// rooms table; reviews are appended to the room_reviews table and never
// updated. Photos are stored on disk and referenced by path, never as
// blobs.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

var _ storage.Gateway = (*RoomRepository)(nil)

// LoadAll retrieves every room with its review history, oldest review
// first so the in-memory history keeps chronological insertion order.
func (r *RoomRepository) LoadAll() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("room_reviews.reviewed_at ASC, room_reviews.id ASC")
		}).
		Order("created_at ASC, id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("%w: loading rooms: %v", storage.ErrPersistence, err)
	}
	return rooms, nil
}

// SaveAll mirrors the in-memory collection into the database in one
// transaction: rooms absent from the collection are removed, the rest are
// upserted, and reviews not yet stored (zero id) are appended.
func (r *RoomRepository) SaveAll(rooms []models.Room) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		ids := make([]string, 0, len(rooms))
		for _, room := range rooms {
			ids = append(ids, room.ID)
		}

		if len(ids) == 0 {
			if err := tx.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.Room{}).Error; err != nil {
				return err
			}
			return nil
		}

		if err := tx.Where("room_id NOT IN ?", ids).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id NOT IN ?", ids).Delete(&models.Room{}).Error; err != nil {
			return err
		}

		for i := range rooms {
			room := rooms[i]
			history := room.History
			room.History = nil
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&room).Error; err != nil {
				return err
			}
			for j := range history {
				if history[j].ID != 0 {
					continue // already stored, append-only
				}
				history[j].RoomID = room.ID
				// Creating through the slice element writes the assigned
				// id back into the caller's history, so the entry is not
				// appended again on the next save.
				if err := tx.Create(&history[j]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: saving rooms: %v", storage.ErrPersistence, err)
	}
	return nil
}
