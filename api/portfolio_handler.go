package api

import (
	"net/http"

	"github.com/brightforge/site-backend/database"
	"github.com/brightforge/site-backend/errs"
	"github.com/brightforge/site-backend/models"
	"github.com/brightforge/site-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type portfolioHandler struct {
	responder           Responder
	logger              zerolog.Logger
	projectRepo         *database.ProjectRepo
	projectCategoryRepo *database.ProjectCategoryRepo
	loader              *services.ContentLoader
}

func newPortfolioHandler(projectRepo *database.ProjectRepo, projectCategoryRepo *database.ProjectCategoryRepo, loader *services.ContentLoader) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:           NewResponder(logger),
		logger:              logger,
		projectRepo:         projectRepo,
		projectCategoryRepo: projectCategoryRepo,
		loader:              loader,
	}
}

// ProjectCollection represents a page of portfolio projects
type ProjectCollection struct {
	Projects []*models.PortfolioProject `json:"projects"`
	Total    int                        `json:"total"`
}

// ProjectCategoryCollection represents the portfolio category list
type ProjectCategoryCollection struct {
	Categories []*models.PortfolioCategory `json:"categories"`
	Total      int                         `json:"total"`
}

// getProjects lists published projects with their testimonials preloaded.
func (h portfolioHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.List(listFilterFromQuery(r))
		if err != nil {
			if h.loader.FailOpen() {
				h.logger.Error().Err(err).Msg("project listing failed, returning empty page")
				h.responder.WriteJSON(w, ProjectCollection{Projects: []*models.PortfolioProject{}})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("list", "portfolio_projects", err))
			return
		}

		if projects == nil {
			projects = []*models.PortfolioProject{}
		}
		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProject resolves a slug to its published project.
func (h portfolioHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "portfolio_project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("portfolio project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectCategories lists every portfolio category ordered by name.
func (h portfolioHandler) getProjectCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.projectCategoryRepo.FindAll()
		if err != nil {
			if h.loader.FailOpen() {
				h.logger.Error().Err(err).Msg("project category listing failed, returning empty list")
				h.responder.WriteJSON(w, ProjectCategoryCollection{Categories: []*models.PortfolioCategory{}})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("list", "portfolio_categories", err))
			return
		}

		if categories == nil {
			categories = []*models.PortfolioCategory{}
		}
		h.responder.WriteJSON(w, ProjectCategoryCollection{Categories: categories, Total: len(categories)})
	}
}

// getPortfolioStats returns the in-memory aggregation over published
// projects: total, featured count, and per-category counts.
func (h portfolioHandler) getPortfolioStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.projectRepo.Stats()
		if err != nil {
			if h.loader.FailOpen() {
				h.logger.Error().Err(err).Msg("stats aggregation failed, returning zero stats")
				h.responder.WriteJSON(w, database.ProjectStats{ByCategory: map[string]int{}})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "portfolio_projects", err))
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}

// getPortfolioIndex returns projects, categories and stats in one payload,
// fetched concurrently, for the portfolio list view's initial render.
func (h portfolioHandler) getPortfolioIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := h.loader.LoadPortfolioIndex(r.Context(), listFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "portfolio index", err))
			return
		}
		h.responder.WriteJSON(w, index)
	}
}
