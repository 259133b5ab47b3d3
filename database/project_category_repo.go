package database

import (
	"github.com/brightforge/site-backend/models"
	"gorm.io/gorm"
)

type ProjectCategoryRepo struct {
	db *gorm.DB
}

func NewProjectCategoryRepo(db *gorm.DB) *ProjectCategoryRepo {
	return &ProjectCategoryRepo{db}
}

// FindAll returns all portfolio categories ordered by name.
func (r *ProjectCategoryRepo) FindAll() ([]*models.PortfolioCategory, error) {
	var categories []*models.PortfolioCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}
