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

func seedProjects(t *testing.T, db *gorm.DB) (fintech uuid.UUID) {
	t.Helper()

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	fintech = uuid.New()
	projects := []models.PortfolioProject{
		{
			ID:            fintech,
			Title:         "Fintech Dashboard",
			Slug:          "fintech-dashboard",
			Description:   "Analytics dashboard for a payments startup.",
			ClientName:    "Acme Payments",
			FeaturedImage: "https://cdn.example.com/fintech-hero.png",
			Gallery:       datatypes.NewJSONSlice([]string{"https://cdn.example.com/fintech-1.png", "https://cdn.example.com/fintech-2.png"}),
			Category:      "web-development",
			Technologies:  datatypes.NewJSONSlice([]string{"React", "Go", "Postgres"}),
			Featured:      true,
			Published:     true,
			CreatedAt:     base.Add(48 * time.Hour),
		},
		{
			ID:            uuid.New(),
			Title:         "Brand Refresh",
			Slug:          "brand-refresh",
			Description:   "Identity system for a logistics firm.",
			ClientName:    "Northline Logistics",
			FeaturedImage: "https://cdn.example.com/brand-hero.png",
			Category:      "brand-identity",
			Published:     true,
			CreatedAt:     base.Add(24 * time.Hour),
		},
		{
			ID:            uuid.New(),
			Title:         "Internal Pitch",
			Slug:          "internal-pitch",
			Description:   "Unpublished concept work.",
			FeaturedImage: "https://cdn.example.com/pitch-hero.png",
			Category:      "web-development",
			Featured:      true,
			Published:     false,
			CreatedAt:     base,
		},
	}
	for i := range projects {
		require.NoError(t, db.Create(&projects[i]).Error)
	}

	quote := models.Testimonial{
		ID:         uuid.New(),
		ProjectID:  fintech,
		ClientName: "Dana Reyes",
		ClientRole: "CTO",
		Company:    "Acme Payments",
		Quote:      "Shipped ahead of schedule and the dashboard just works.",
		Rating:     5,
	}
	require.NoError(t, db.Create(&quote).Error)

	return fintech
}

func TestProjectRepo_List_PublishedWithTestimonials(t *testing.T) {
	db := setupTestDB(t)
	seedProjects(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 2, "unpublished rows must not be listed")

	assert.Equal(t, "fintech-dashboard", projects[0].Slug)
	require.Len(t, projects[0].Testimonials, 1)
	assert.Equal(t, "Dana Reyes", projects[0].Testimonials[0].ClientName)
}

func TestProjectRepo_List_CategoryNormalizedWithHyphens(t *testing.T) {
	db := setupTestDB(t)
	seedProjects(t, db)
	repo := NewProjectRepo(db)

	// "Brand Identity" must become "brand-identity" before matching.
	projects, err := repo.List(ListFilter{Category: "Brand Identity"})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "brand-refresh", projects[0].Slug)
}

func TestProjectRepo_List_FeaturedOnly(t *testing.T) {
	db := setupTestDB(t)
	seedProjects(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.List(ListFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "fintech-dashboard", projects[0].Slug)
}

func TestProjectRepo_FindBySlug(t *testing.T) {
	db := setupTestDB(t)
	seedProjects(t, db)
	repo := NewProjectRepo(db)

	project, err := repo.FindBySlug("fintech-dashboard")
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, "Acme Payments", project.ClientName)
	assert.Len(t, project.Testimonials, 1)

	// Unpublished slug reads as absent.
	hidden, err := repo.FindBySlug("internal-pitch")
	require.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestProjectRepo_Stats(t *testing.T) {
	db := setupTestDB(t)
	seedProjects(t, db)
	repo := NewProjectRepo(db)

	stats, err := repo.Stats()
	require.NoError(t, err)

	// Only published rows count.
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Featured)
	assert.Equal(t, 1, stats.ByCategory["web-development"])
	assert.Equal(t, 1, stats.ByCategory["brand-identity"])
}

func TestTestimonialRepo_FindByProject(t *testing.T) {
	db := setupTestDB(t)
	fintech := seedProjects(t, db)
	repo := NewTestimonialRepo(db)

	testimonials, err := repo.FindByProject(fintech)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, 5, testimonials[0].Rating)

	none, err := repo.FindByProject(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
