package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PortfolioProject represents a client engagement shown on the portfolio
// pages, together with its testimonials (fetched via join on read).
type PortfolioProject struct {
	ID            uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:(gen_random_uuid());not null"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string                      `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Description   string                      `json:"description" db:"description" gorm:"type:text;not null"`
	ClientName    string                      `json:"clientName" db:"client_name" gorm:"type:text"`
	ProjectURL    *string                     `json:"projectUrl,omitempty" db:"project_url" gorm:"type:text"`
	FeaturedImage string                      `json:"featuredImage" db:"featured_image" gorm:"type:text"`
	Gallery       datatypes.JSONSlice[string] `json:"gallery,omitempty" db:"gallery"`
	Category      string                      `json:"category" db:"category" gorm:"type:text;not null;index"`
	Technologies  datatypes.JSONSlice[string] `json:"technologies,omitempty" db:"technologies"`
	Deliverables  datatypes.JSONSlice[string] `json:"deliverables,omitempty" db:"deliverables"`
	Tools         datatypes.JSONSlice[string] `json:"tools,omitempty" db:"tools"`
	Platforms     datatypes.JSONSlice[string] `json:"platforms,omitempty" db:"platforms"`
	Duration      *string                     `json:"duration,omitempty" db:"duration" gorm:"type:text"`
	Year          *string                     `json:"year,omitempty" db:"year" gorm:"type:text"`
	Featured      bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	Published     bool                        `json:"published" db:"published" gorm:"not null;default:false;index"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     *time.Time                  `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`
	Testimonials  []Testimonial               `json:"testimonials,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (PortfolioProject) TableName() string {
	return "portfolio_projects"
}

// DisplayImages returns the image sequence shown for the project. A project
// with an empty gallery still renders with its featured image as the sole
// element.
func (p PortfolioProject) DisplayImages() []string {
	if len(p.Gallery) > 0 {
		return p.Gallery
	}
	return []string{p.FeaturedImage}
}
