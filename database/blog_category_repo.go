package database

import (
	"github.com/brightforge/site-backend/models"
	"gorm.io/gorm"
)

type BlogCategoryRepo struct {
	db *gorm.DB
}

func NewBlogCategoryRepo(db *gorm.DB) *BlogCategoryRepo {
	return &BlogCategoryRepo{db}
}

// FindAll returns all blog categories ordered by name. Categories are not
// gated by a published flag.
func (r *BlogCategoryRepo) FindAll() ([]*models.BlogCategory, error) {
	var categories []*models.BlogCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}
