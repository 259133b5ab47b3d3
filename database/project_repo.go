package database

import (
	"github.com/brightforge/site-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// ProjectStats summarizes the published portfolio. Counts are computed in
// application memory from the fetched rows, not by the store.
type ProjectStats struct {
	Total      int            `json:"total"`
	Featured   int            `json:"featured"`
	ByCategory map[string]int `json:"byCategory"`
}

// List returns published portfolio projects newest-first with their
// testimonials preloaded. Category filters are normalized with the portfolio
// convention (lower-case, spaces to hyphens).
func (r *ProjectRepo) List(filter ListFilter) ([]*models.PortfolioProject, error) {
	query := r.db.Preload("Testimonials").Where("published = ?", true).Order("created_at DESC")

	if !models.IsAllCategories(filter.Category) {
		query = query.Where("category = ?", models.NormalizePortfolioCategory(filter.Category))
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var projects []*models.PortfolioProject
	err := query.Find(&projects).Error
	return projects, err
}

// FindBySlug returns the published project with the given slug and its
// testimonials, or nil when absent or unpublished.
func (r *ProjectRepo) FindBySlug(slug string) (*models.PortfolioProject, error) {
	var project models.PortfolioProject
	err := r.db.Preload("Testimonials").
		Where("slug = ? AND published = ?", slug, true).
		First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// Stats fetches category and featured flags for every published project and
// aggregates them in memory.
func (r *ProjectRepo) Stats() (*ProjectStats, error) {
	var rows []struct {
		Category string
		Featured bool
	}
	err := r.db.Model(&models.PortfolioProject{}).
		Select("category", "featured").
		Where("published = ?", true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &ProjectStats{ByCategory: make(map[string]int)}
	for _, row := range rows {
		stats.Total++
		if row.Featured {
			stats.Featured++
		}
		stats.ByCategory[row.Category]++
	}
	return stats, nil
}
