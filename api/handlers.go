package api

import (
	"github.com/brightforge/site-backend/database"
	"github.com/brightforge/site-backend/errs"
	"github.com/brightforge/site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, loader *services.ContentLoader, mailer *services.Mailer, notifyEmail string) *routeHandlers {
	return &routeHandlers{
		blogHandler:      newBlogHandler(db.BlogPostRepo(), db.BlogCategoryRepo(), loader),
		portfolioHandler: newPortfolioHandler(db.ProjectRepo(), db.ProjectCategoryRepo(), loader),
		contactHandler: newContactHandler(
			services.NewContactFormService(db.ContactRepo()),
			services.NewNewsletterService(db.NewsletterRepo()),
		),
		notifyHandler: newNotifyHandler(mailer, notifyEmail),
	}
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
