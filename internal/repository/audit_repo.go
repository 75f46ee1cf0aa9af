package repository

import (
	"room-review-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record creates a new audit log entry
func (r *AuditRepository) Record(action string, details string) error {
	log := &models.AuditLog{
		Action:  action,
		Details: details,
	}
	return r.db.Create(log).Error
}
