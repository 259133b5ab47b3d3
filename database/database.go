package database

import (
	"gorm.io/gorm"
)

// ListFilter narrows a content listing. The zero value lists every published
// row newest-first.
type ListFilter struct {
	Category     string // display name or the "All" sentinel; normalized before querying
	FeaturedOnly bool
	Limit        int // <= 0 means no limit
}

type Database struct {
	blogPostRepo        *BlogPostRepo
	blogCategoryRepo    *BlogCategoryRepo
	projectRepo         *ProjectRepo
	projectCategoryRepo *ProjectCategoryRepo
	testimonialRepo     *TestimonialRepo
	contactRepo         *ContactRepo
	newsletterRepo      *NewsletterRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:        NewBlogPostRepo(db),
		blogCategoryRepo:    NewBlogCategoryRepo(db),
		projectRepo:         NewProjectRepo(db),
		projectCategoryRepo: NewProjectCategoryRepo(db),
		testimonialRepo:     NewTestimonialRepo(db),
		contactRepo:         NewContactRepo(db),
		newsletterRepo:      NewNewsletterRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) BlogCategoryRepo() *BlogCategoryRepo {
	return d.blogCategoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectCategoryRepo() *ProjectCategoryRepo {
	return d.projectCategoryRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) NewsletterRepo() *NewsletterRepo {
	return d.newsletterRepo
}
