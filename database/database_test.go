package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brightforge/site-backend/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(
		&models.BlogPost{},
		&models.BlogCategory{},
		&models.PortfolioProject{},
		&models.PortfolioCategory{},
		&models.Testimonial{},
		&models.ContactSubmission{},
		&models.NewsletterSubscriber{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}
