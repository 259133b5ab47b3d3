package models

import "github.com/google/uuid"

// Testimonial is a client quote attached to a portfolio project. The rating
// is expected to fall in 1-5 but the application does not validate it.
type Testimonial struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:(gen_random_uuid());not null"`
	ProjectID   uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_testimonial_project_id"`
	ClientName  string    `json:"clientName" db:"client_name" gorm:"type:text;not null"`
	ClientRole  string    `json:"clientRole" db:"client_role" gorm:"type:text"`
	Company     string    `json:"company" db:"company" gorm:"type:text"`
	ClientImage *string   `json:"clientImage,omitempty" db:"client_image" gorm:"type:text"`
	Quote       string    `json:"quote" db:"quote" gorm:"type:text;not null"`
	Rating      int       `json:"rating" db:"rating" gorm:"type:integer;not null;default:5"`
}

func (Testimonial) TableName() string {
	return "portfolio_testimonials"
}
