package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletter_Subscribe_FirstSucceedsSecondIsDuplicate(t *testing.T) {
	_, wrapped := setupTestDB(t)
	service := NewNewsletterService(wrapped.NewsletterRepo())

	first := service.Subscribe("jane@example.com")
	require.True(t, first.Success)

	second := service.Subscribe("jane@example.com")
	assert.False(t, second.Success)
	assert.Equal(t, DuplicateSubscriberMessage, second.Message)
}

func TestNewsletter_Subscribe_NormalizesEmailBeforeDuplicateCheck(t *testing.T) {
	_, wrapped := setupTestDB(t)
	service := NewNewsletterService(wrapped.NewsletterRepo())

	require.True(t, service.Subscribe("jane@example.com").Success)

	// Same address with different casing and whitespace is the same row.
	result := service.Subscribe("  Jane@Example.COM ")
	assert.False(t, result.Success)
	assert.Equal(t, DuplicateSubscriberMessage, result.Message)
}

func TestNewsletter_Subscribe_InvalidEmail(t *testing.T) {
	_, wrapped := setupTestDB(t)
	service := NewNewsletterService(wrapped.NewsletterRepo())

	result := service.Subscribe("not-an-email")
	assert.False(t, result.Success)
	assert.Contains(t, result.FieldErrors, "email")
}
