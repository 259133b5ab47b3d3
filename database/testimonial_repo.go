package database

import (
	"github.com/brightforge/site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// FindByProject returns the testimonials attached to a project.
func (r *TestimonialRepo) FindByProject(projectID uuid.UUID) ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.Where("project_id = ?", projectID).Find(&testimonials).Error
	return testimonials, err
}

// Add inserts a new testimonial.
func (r *TestimonialRepo) Add(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}
