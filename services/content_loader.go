package services

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/brightforge/site-backend/database"
	"github.com/brightforge/site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ContentLoader assembles the payloads the site's list views render: the
// filtered entity page plus the category list, fetched in parallel. Both
// fetches must resolve before a result is returned.
//
// Each load is stamped with a monotonically increasing generation so that a
// response resolving after a newer request can be discarded (see Latest).
//
// When failOpen is set, read failures are logged and produce empty
// collections instead of propagating; callers cannot distinguish "no
// results" from "query failed". When unset, errors propagate.
type ContentLoader struct {
	blogPostRepo        *database.BlogPostRepo
	blogCategoryRepo    *database.BlogCategoryRepo
	projectRepo         *database.ProjectRepo
	projectCategoryRepo *database.ProjectCategoryRepo
	failOpen            bool
	generation          atomic.Uint64
	logger              zerolog.Logger
}

func NewContentLoader(db database.Database, failOpen bool) *ContentLoader {
	return &ContentLoader{
		blogPostRepo:        db.BlogPostRepo(),
		blogCategoryRepo:    db.BlogCategoryRepo(),
		projectRepo:         db.ProjectRepo(),
		projectCategoryRepo: db.ProjectCategoryRepo(),
		failOpen:            failOpen,
		logger:              log.With().Str("serviceName", "contentLoader").Logger(),
	}
}

// BlogIndex is everything the blog list view needs in one payload.
type BlogIndex struct {
	Generation uint64                 `json:"-"`
	Posts      []*models.BlogPost     `json:"posts"`
	Categories []*models.BlogCategory `json:"categories"`
}

// PortfolioIndex is everything the portfolio list view needs in one payload.
type PortfolioIndex struct {
	Generation uint64                      `json:"-"`
	Projects   []*models.PortfolioProject  `json:"projects"`
	Categories []*models.PortfolioCategory `json:"categories"`
	Stats      *database.ProjectStats      `json:"stats"`
}

// LoadBlogIndex fetches the filtered post page and the category list
// concurrently and returns them together.
func (l *ContentLoader) LoadBlogIndex(ctx context.Context, filter database.ListFilter) (*BlogIndex, error) {
	index := &BlogIndex{
		Generation: l.generation.Add(1),
		Posts:      []*models.BlogPost{},
		Categories: []*models.BlogCategory{},
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := l.blogPostRepo.List(filter)
		if err != nil {
			return l.swallowOrFail("list blog posts", err)
		}
		if posts != nil {
			index.Posts = posts
		}
		return nil
	})
	g.Go(func() error {
		categories, err := l.blogCategoryRepo.FindAll()
		if err != nil {
			return l.swallowOrFail("list blog categories", err)
		}
		if categories != nil {
			index.Categories = categories
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return index, nil
}

// LoadPortfolioIndex fetches the filtered project page, the category list
// and the portfolio stats concurrently and returns them together.
func (l *ContentLoader) LoadPortfolioIndex(ctx context.Context, filter database.ListFilter) (*PortfolioIndex, error) {
	index := &PortfolioIndex{
		Generation: l.generation.Add(1),
		Projects:   []*models.PortfolioProject{},
		Categories: []*models.PortfolioCategory{},
		Stats:      &database.ProjectStats{ByCategory: map[string]int{}},
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects, err := l.projectRepo.List(filter)
		if err != nil {
			return l.swallowOrFail("list portfolio projects", err)
		}
		if projects != nil {
			index.Projects = projects
		}
		return nil
	})
	g.Go(func() error {
		categories, err := l.projectCategoryRepo.FindAll()
		if err != nil {
			return l.swallowOrFail("list portfolio categories", err)
		}
		if categories != nil {
			index.Categories = categories
		}
		return nil
	})
	g.Go(func() error {
		stats, err := l.projectRepo.Stats()
		if err != nil {
			return l.swallowOrFail("aggregate portfolio stats", err)
		}
		if stats != nil {
			index.Stats = stats
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return index, nil
}

// FailOpen reports whether read failures degrade to empty results.
func (l *ContentLoader) FailOpen() bool {
	return l.failOpen
}

func (l *ContentLoader) swallowOrFail(operation string, err error) error {
	if l.failOpen {
		l.logger.Error().Err(err).Str("operation", operation).Msg("read failed, degrading to empty result")
		return nil
	}
	return err
}

// FilterPosts applies the pure, case-insensitive substring filter over an
// already-loaded page of posts: title, excerpt and tags are matched, and no
// new fetch is triggered. An empty term returns the input unchanged.
func FilterPosts(posts []*models.BlogPost, term string) []*models.BlogPost {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return posts
	}

	var matched []*models.BlogPost
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), term) ||
			strings.Contains(strings.ToLower(post.Excerpt), term) {
			matched = append(matched, post)
			continue
		}
		for _, tag := range post.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				matched = append(matched, post)
				break
			}
		}
	}
	return matched
}

// Latest retains the result of the newest load generation. Apply reports
// whether the value was accepted; results from superseded loads are
// discarded so a slow response can never overwrite a newer one.
type Latest[T any] struct {
	mu         sync.Mutex
	generation uint64
	value      T
	loaded     bool
}

func (l *Latest[T]) Apply(generation uint64, value T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded && generation <= l.generation {
		return false
	}
	l.generation = generation
	l.value = value
	l.loaded = true
	return true
}

func (l *Latest[T]) Get() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.loaded
}
