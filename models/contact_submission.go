package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is written by the contact form and never read back by
// the application. The store's row-insert trigger forwards it to the
// notification hook.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:(gen_random_uuid());not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;index"`
	Service   string    `json:"service" db:"service" gorm:"type:text;not null"`
	Message   *string   `json:"message,omitempty" db:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
