package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/brightforge/site-backend/database"
	"github.com/brightforge/site-backend/models"
)

func seedContent(t *testing.T, db *gorm.DB) {
	t.Helper()

	post := models.BlogPost{
		ID:          uuid.New(),
		Title:       "Shipping Fast Without Breaking Things",
		Slug:        "shipping-fast",
		Excerpt:     "Release trains for small teams.",
		Content:     "Ship in small increments.",
		Category:    "development",
		Published:   true,
		PublishedAt: time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)

	category := models.BlogCategory{
		ID:   uuid.New(),
		Name: "Development",
		Slug: "development",
	}
	require.NoError(t, db.Create(&category).Error)

	project := models.PortfolioProject{
		ID:            uuid.New(),
		Title:         "Marketing Site",
		Slug:          "marketing-site",
		Description:   "A fast marketing site.",
		FeaturedImage: "hero.png",
		Category:      "web-development",
		Published:     true,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, db.Create(&project).Error)
}

func TestContentLoader_LoadBlogIndex_FetchesPostsAndCategories(t *testing.T) {
	db, wrapped := setupTestDB(t)
	seedContent(t, db)
	loader := NewContentLoader(wrapped, true)

	index, err := loader.LoadBlogIndex(context.Background(), database.ListFilter{})
	require.NoError(t, err)

	require.Len(t, index.Posts, 1)
	require.Len(t, index.Categories, 1)
	assert.Equal(t, "shipping-fast", index.Posts[0].Slug)
	assert.Equal(t, "Development", index.Categories[0].Name)
}

func TestContentLoader_LoadPortfolioIndex_IncludesStats(t *testing.T) {
	db, wrapped := setupTestDB(t)
	seedContent(t, db)
	loader := NewContentLoader(wrapped, true)

	index, err := loader.LoadPortfolioIndex(context.Background(), database.ListFilter{})
	require.NoError(t, err)

	require.Len(t, index.Projects, 1)
	require.NotNil(t, index.Stats)
	assert.Equal(t, 1, index.Stats.Total)
	assert.Equal(t, 1, index.Stats.ByCategory["web-development"])
}

func TestContentLoader_GenerationsIncrease(t *testing.T) {
	db, wrapped := setupTestDB(t)
	seedContent(t, db)
	loader := NewContentLoader(wrapped, true)

	first, err := loader.LoadBlogIndex(context.Background(), database.ListFilter{})
	require.NoError(t, err)
	second, err := loader.LoadBlogIndex(context.Background(), database.ListFilter{})
	require.NoError(t, err)

	assert.Greater(t, second.Generation, first.Generation)
}

func TestContentLoader_FailOpenDegradesToEmpty(t *testing.T) {
	db, wrapped := setupTestDB(t)
	seedContent(t, db)

	// Dropping the table makes every post query fail at the store level.
	require.NoError(t, db.Migrator().DropTable(&models.BlogPost{}))

	loader := NewContentLoader(wrapped, true)
	index, err := loader.LoadBlogIndex(context.Background(), database.ListFilter{})
	require.NoError(t, err, "fail-open reads must not propagate errors")
	assert.Empty(t, index.Posts)
	assert.Len(t, index.Categories, 1, "the healthy fetch still completes")
}

func TestContentLoader_FailClosedPropagates(t *testing.T) {
	db, wrapped := setupTestDB(t)
	seedContent(t, db)
	require.NoError(t, db.Migrator().DropTable(&models.BlogPost{}))

	loader := NewContentLoader(wrapped, false)
	_, err := loader.LoadBlogIndex(context.Background(), database.ListFilter{})
	assert.Error(t, err)
}

func TestLatest_DiscardsStaleGenerations(t *testing.T) {
	var latest Latest[[]string]

	assert.True(t, latest.Apply(2, []string{"newer"}))

	// A slow response from an earlier request resolves afterwards and must
	// not overwrite the newer state.
	assert.False(t, latest.Apply(1, []string{"stale"}))

	value, ok := latest.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"newer"}, value)

	assert.True(t, latest.Apply(3, []string{"newest"}))
	value, _ = latest.Get()
	assert.Equal(t, []string{"newest"}, value)
}

func TestFilterPosts_PureSubstringFilter(t *testing.T) {
	posts := []*models.BlogPost{
		{Title: "Designing for Dark Mode", Excerpt: "contrast and color"},
		{Title: "Go Services", Excerpt: "infrastructure notes", Tags: []string{"golang", "devops"}},
	}

	assert.Len(t, FilterPosts(posts, ""), 2)
	assert.Len(t, FilterPosts(posts, "dark MODE"), 1)
	assert.Len(t, FilterPosts(posts, "devops"), 1)
	assert.Empty(t, FilterPosts(posts, "rustaceans"))
}
