package models

import "github.com/google/uuid"

// BlogCategory populates the blog filter controls. Categories are not gated
// by a published flag.
type BlogCategory struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:(gen_random_uuid());not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
}

func (BlogCategory) TableName() string {
	return "blog_categories"
}
