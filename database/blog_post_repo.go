package database

import (
	"strings"

	"github.com/brightforge/site-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *BlogPostRepo) GetDB() *gorm.DB {
	return r.db
}

// List returns published blog posts newest-first. A category that isn't the
// "All" sentinel is normalized and added as an equality filter; a category
// that matches no stored value yields an empty slice, never an error.
func (r *BlogPostRepo) List(filter ListFilter) ([]*models.BlogPost, error) {
	query := r.db.Where("published = ?", true).Order("published_at DESC")

	if !models.IsAllCategories(filter.Category) {
		query = query.Where("category = ?", models.NormalizeBlogCategory(filter.Category))
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var posts []*models.BlogPost
	err := query.Find(&posts).Error
	return posts, err
}

// FindBySlug returns the published post with the given slug, or nil when no
// such row exists. The published flag strictly gates visibility: an
// unpublished row with a matching slug is reported as absent.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ? AND published = ?", slug, true).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Search returns published posts whose title, excerpt or content contains
// the term, case-insensitively. The match happens at the store level so it
// covers content beyond any already-fetched page.
func (r *BlogPostRepo) Search(term string) ([]*models.BlogPost, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	var posts []*models.BlogPost
	err := r.db.
		Where("published = ?", true).
		Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern, pattern).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}
