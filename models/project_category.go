package models

import "github.com/google/uuid"

// PortfolioCategory populates the portfolio filter controls.
type PortfolioCategory struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:(gen_random_uuid());not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
}

func (PortfolioCategory) TableName() string {
	return "portfolio_categories"
}
