package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/brightforge/site-backend/models"
)

func seedBlogPosts(t *testing.T, db *gorm.DB) {
	t.Helper()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.BlogPost{
		{
			ID:          uuid.New(),
			Title:       "Designing for Dark Mode",
			Slug:        "designing-for-dark-mode",
			Excerpt:     "A practical look at contrast and color tokens.",
			Content:     "# Dark mode\nContrast matters more than you think.",
			Category:    "design",
			Tags:        datatypes.NewJSONSlice([]string{"ui", "accessibility"}),
			Featured:    true,
			Published:   true,
			PublishedAt: base.Add(48 * time.Hour),
			CreatedAt:   base,
		},
		{
			ID:          uuid.New(),
			Title:       "Go Services in Production",
			Slug:        "go-services-in-production",
			Excerpt:     "Lessons from running Go behind a CDN.",
			Content:     "## Deployment\nGraceful shutdown is table stakes.",
			Category:    "development",
			Tags:        datatypes.NewJSONSlice([]string{"go", "infrastructure"}),
			Published:   true,
			PublishedAt: base.Add(24 * time.Hour),
			CreatedAt:   base,
		},
		{
			ID:          uuid.New(),
			Title:       "Choosing a CSS Strategy",
			Slug:        "choosing-a-css-strategy",
			Excerpt:     "Utility classes, modules, or both?",
			Content:     "### Tradeoffs\nEvery team relearns this one.",
			Category:    "design",
			Published:   true,
			PublishedAt: base,
			CreatedAt:   base,
		},
		{
			ID:          uuid.New(),
			Title:       "Unreleased Draft",
			Slug:        "unreleased-draft",
			Excerpt:     "Not ready yet.",
			Content:     "Draft content about dark mode.",
			Category:    "design",
			Published:   false,
			PublishedAt: base.Add(72 * time.Hour),
			CreatedAt:   base,
		},
	}
	for i := range posts {
		require.NoError(t, db.Create(&posts[i]).Error)
	}
}

func TestBlogPostRepo_List_PublishedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	posts, err := repo.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 3, "unpublished rows must not be listed")

	assert.Equal(t, "designing-for-dark-mode", posts[0].Slug)
	assert.Equal(t, "go-services-in-production", posts[1].Slug)
	assert.Equal(t, "choosing-a-css-strategy", posts[2].Slug)
}

func TestBlogPostRepo_List_AllSentinelMeansNoFilter(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	unfiltered, err := repo.List(ListFilter{})
	require.NoError(t, err)

	for _, sentinel := range []string{"All", "all", "ALL", ""} {
		filtered, err := repo.List(ListFilter{Category: sentinel})
		require.NoError(t, err)
		assert.Equal(t, len(unfiltered), len(filtered), "sentinel %q must not narrow the listing", sentinel)
	}
}

func TestBlogPostRepo_List_CategoryNormalized(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	// Display name casing must be lowered before matching stored values.
	posts, err := repo.List(ListFilter{Category: "Design"})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, post := range posts {
		assert.Equal(t, "design", post.Category)
	}
}

func TestBlogPostRepo_List_UnknownCategoryIsEmptyNotError(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	posts, err := repo.List(ListFilter{Category: "No Such Category"})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestBlogPostRepo_List_FeaturedAndLimit(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	featured, err := repo.List(ListFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "designing-for-dark-mode", featured[0].Slug)

	limited, err := repo.List(ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestBlogPostRepo_FindBySlug(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	post, err := repo.FindBySlug("go-services-in-production")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Go Services in Production", post.Title)

	missing, err := repo.FindBySlug("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBlogPostRepo_FindBySlug_PublishedFlagGatesVisibility(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	// The row exists but is unpublished, so it must read as absent.
	post, err := repo.FindBySlug("unreleased-draft")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestBlogPostRepo_Search(t *testing.T) {
	db := setupTestDB(t)
	seedBlogPosts(t, db)
	repo := NewBlogPostRepo(db)

	// Case-insensitive, matches across title, excerpt and content, and the
	// unpublished draft mentioning dark mode stays hidden.
	posts, err := repo.Search("DARK MODE")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "designing-for-dark-mode", posts[0].Slug)

	byContent, err := repo.Search("graceful shutdown")
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, "go-services-in-production", byContent[0].Slug)

	none, err := repo.Search("quantum chromodynamics")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBlogCategoryRepo_FindAll_OrderedAndIdempotent(t *testing.T) {
	db := setupTestDB(t)
	for _, name := range []string{"Development", "Design", "Strategy"} {
		category := models.BlogCategory{
			ID:   uuid.New(),
			Name: name,
			Slug: models.NormalizeBlogCategory(name),
		}
		require.NoError(t, db.Create(&category).Error)
	}
	repo := NewBlogCategoryRepo(db)

	first, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "Design", first[0].Name)
	assert.Equal(t, "Development", first[1].Name)
	assert.Equal(t, "Strategy", first[2].Name)

	second, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
	}
}
