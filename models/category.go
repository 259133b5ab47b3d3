package models

import "strings"

// CategoryAll is the UI's placeholder category value meaning "no filter
// applied". It must never be translated into an equality filter.
const CategoryAll = "All"

// IsAllCategories reports whether the given filter value means "no category
// filter". Empty strings and the sentinel (any casing) both qualify.
func IsAllCategories(category string) bool {
	return strings.TrimSpace(category) == "" || strings.EqualFold(category, CategoryAll)
}

// NormalizeBlogCategory maps a display name to the value stored on
// blog_posts.category. Blog rows store the lower-cased name.
func NormalizeBlogCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizePortfolioCategory maps a display name to the value stored on
// portfolio_projects.category: lower-cased with spaces replaced by hyphens.
// Both read and write paths must go through this function; a value that
// bypasses it silently matches nothing.
func NormalizePortfolioCategory(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
