package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriber holds one opted-in email address. Uniqueness of the
// email is enforced by the store, not the application.
type NewsletterSubscriber struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:(gen_random_uuid());not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_newsletter_email"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	Active       bool      `json:"active" db:"active" gorm:"not null;default:true"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
