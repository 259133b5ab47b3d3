package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlogPost represents a published article with author metadata.
// Rows are created by the editorial process; the application only reads them.
type BlogPost struct {
	ID            uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:(gen_random_uuid());not null"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string                      `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Excerpt       string                      `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Content       string                      `json:"content" db:"content" gorm:"type:text;not null"`
	AuthorName    string                      `json:"authorName" db:"author_name" gorm:"type:text"`
	AuthorRole    string                      `json:"authorRole" db:"author_role" gorm:"type:text"`
	AuthorImage   *string                     `json:"authorImage,omitempty" db:"author_image" gorm:"type:text"`
	FeaturedImage string                      `json:"featuredImage" db:"featured_image" gorm:"type:text"`
	Category      string                      `json:"category" db:"category" gorm:"type:text;not null;index"`
	Tags          datatypes.JSONSlice[string] `json:"tags,omitempty" db:"tags"`
	ReadTime      string                      `json:"readTime" db:"read_time" gorm:"type:text"`
	Featured      bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	Published     bool                        `json:"published" db:"published" gorm:"not null;default:false;index"`
	PublishedAt   time.Time                   `json:"publishedAt" db:"published_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     *time.Time                  `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

// TableName keeps the table name aligned with the hosted store's schema.
func (BlogPost) TableName() string {
	return "blog_posts"
}
