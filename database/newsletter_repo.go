package database

import (
	"github.com/brightforge/site-backend/errs"
	"github.com/brightforge/site-backend/models"
	"gorm.io/gorm"
)

type NewsletterRepo struct {
	db *gorm.DB
}

func NewNewsletterRepo(db *gorm.DB) *NewsletterRepo {
	return &NewsletterRepo{db}
}

// Add inserts a subscriber. A uniqueness violation on the email column is
// mapped to errs.ErrAlreadyExists so callers can show the duplicate-specific
// message; every other failure passes through unchanged.
func (r *NewsletterRepo) Add(subscriber *models.NewsletterSubscriber) error {
	err := r.db.Create(subscriber).Error
	if err != nil && errs.IsUniqueViolation(err) {
		return errs.NewAlreadyExists("newsletter subscriber")
	}
	return err
}
