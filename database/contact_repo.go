package database

import (
	"github.com/brightforge/site-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a contact submission. The application never reads these rows
// back; the store's insert trigger forwards them to the notification hook.
func (r *ContactRepo) Add(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}

// Count returns the number of stored submissions.
func (r *ContactRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactSubmission{}).Count(&count).Error
	return count, err
}
