package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for article and layout fields.
const (
	maxTitleLen      = 300
	maxContentLen    = 100_000
	maxLayoutNameLen = 200
	maxElementCount  = 500
	maxMetaDescLen   = 500
	maxKeywordCount  = 50
)

// validateArticle checks article inputs and returns the first error found.
func validateArticle(title, content string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(content) == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}

// validateArticleMetadata checks optional SEO fields.
func validateArticleMetadata(metaDesc string, keywords []string) string {
	if utf8.RuneCountInString(metaDesc) > maxMetaDescLen {
		return "Meta description is too long (max 500 characters)."
	}
	if len(keywords) > maxKeywordCount {
		return "Too many keywords (max 50)."
	}
	return ""
}

// validateLayout checks layout inputs and returns the first error found.
// elementCount is the length of the decoded elements array.
func validateLayout(name string, elementCount int) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Layout name is required."
	}
	if utf8.RuneCountInString(name) > maxLayoutNameLen {
		return "Layout name is too long (max 200 characters)."
	}
	if elementCount > maxElementCount {
		return "Too many elements (max 500)."
	}
	return ""
}
