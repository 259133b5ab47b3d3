package api

import (
	"net/http"
	"strconv"

	"github.com/brightforge/site-backend/database"
	"github.com/brightforge/site-backend/errs"
	"github.com/brightforge/site-backend/models"
	"github.com/brightforge/site-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder        Responder
	logger           zerolog.Logger
	blogPostRepo     *database.BlogPostRepo
	blogCategoryRepo *database.BlogCategoryRepo
	loader           *services.ContentLoader
}

func newBlogHandler(blogPostRepo *database.BlogPostRepo, blogCategoryRepo *database.BlogCategoryRepo, loader *services.ContentLoader) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		blogPostRepo:     blogPostRepo,
		blogCategoryRepo: blogCategoryRepo,
		loader:           loader,
	}
}

// BlogPostCollection represents a page of blog posts
type BlogPostCollection struct {
	Posts []*models.BlogPost `json:"posts"`
	Total int                `json:"total"`
}

// BlogCategoryCollection represents the blog category list
type BlogCategoryCollection struct {
	Categories []*models.BlogCategory `json:"categories"`
	Total      int                    `json:"total"`
}

// listFilterFromQuery builds a ListFilter from the request's query string.
func listFilterFromQuery(r *http.Request) database.ListFilter {
	filter := database.ListFilter{
		Category: r.URL.Query().Get("category"),
	}
	if featured, err := strconv.ParseBool(r.URL.Query().Get("featured")); err == nil {
		filter.FeaturedOnly = featured
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}

// getBlogPosts lists published posts. A q parameter routes to the
// store-level search; category/featured/limit narrow a plain listing. When
// the fail-open read policy is active, a failed query degrades to an empty
// page instead of an error response.
func (h blogHandler) getBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			posts []*models.BlogPost
			err   error
		)

		if term := r.URL.Query().Get("q"); term != "" {
			posts, err = h.blogPostRepo.Search(term)
		} else {
			posts, err = h.blogPostRepo.List(listFilterFromQuery(r))
		}
		if err != nil {
			if h.loader.FailOpen() {
				h.logger.Error().Err(err).Msg("blog post listing failed, returning empty page")
				h.responder.WriteJSON(w, BlogPostCollection{Posts: []*models.BlogPost{}})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("list", "blog_posts", err))
			return
		}

		if posts == nil {
			posts = []*models.BlogPost{}
		}
		h.responder.WriteJSON(w, BlogPostCollection{Posts: posts, Total: len(posts)})
	}
}

// getBlogPost resolves a slug to its published post; unpublished or unknown
// slugs are indistinguishable and both yield 404.
func (h blogHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog_post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getBlogCategories lists every category ordered by name.
func (h blogHandler) getBlogCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.blogCategoryRepo.FindAll()
		if err != nil {
			if h.loader.FailOpen() {
				h.logger.Error().Err(err).Msg("blog category listing failed, returning empty list")
				h.responder.WriteJSON(w, BlogCategoryCollection{Categories: []*models.BlogCategory{}})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("list", "blog_categories", err))
			return
		}

		if categories == nil {
			categories = []*models.BlogCategory{}
		}
		h.responder.WriteJSON(w, BlogCategoryCollection{Categories: categories, Total: len(categories)})
	}
}

// getBlogIndex returns posts and categories in one payload, fetched
// concurrently, for the blog list view's initial render.
func (h blogHandler) getBlogIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := h.loader.LoadBlogIndex(r.Context(), listFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "blog index", err))
			return
		}
		h.responder.WriteJSON(w, index)
	}
}
