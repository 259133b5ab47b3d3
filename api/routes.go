package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes wires every route the site's frontend and the store's
// insert trigger call.
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog endpoints
		r.Get("/blog-posts", handlers.blogHandler.getBlogPosts())
		r.Get("/blog-posts/{slug}", handlers.blogHandler.getBlogPost())
		r.Get("/blog-categories", handlers.blogHandler.getBlogCategories())
		r.Get("/blog-index", handlers.blogHandler.getBlogIndex())

		// Portfolio endpoints
		r.Get("/portfolio-projects", handlers.portfolioHandler.getProjects())
		r.Get("/portfolio-projects/{slug}", handlers.portfolioHandler.getProject())
		r.Get("/portfolio-categories", handlers.portfolioHandler.getProjectCategories())
		r.Get("/portfolio-stats", handlers.portfolioHandler.getPortfolioStats())
		r.Get("/portfolio-index", handlers.portfolioHandler.getPortfolioIndex())

		// Form endpoints
		r.Post("/contact", handlers.contactHandler.submitContact())
		r.Post("/newsletter", handlers.contactHandler.subscribeNewsletter())

		// Store insert-trigger hook
		r.Post("/hooks/contact-notification", handlers.notifyHandler.contactNotification())
		r.Options("/hooks/contact-notification", handlers.notifyHandler.contactNotification())
	})
}
