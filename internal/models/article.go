// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Article holds rich-text content as sanitized HTML plus the metadata
// needed to publish it at a stable slug. Styles carries the per-article
// base formatting overrides as a JSON object.
type Article struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Slug            string          `json:"slug"`
	IsPublished     bool            `json:"is_published"`
	PublishedAt     *time.Time      `json:"published_at,omitempty"`
	Styles          json.RawMessage `json:"styles,omitempty"`
	LayoutID        *uuid.UUID      `json:"layout_id,omitempty"`
	MetaTitle       *string         `json:"meta_title,omitempty"`
	MetaDescription *string         `json:"meta_description,omitempty"`
	Keywords        []string        `json:"keywords,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MetaTitleOrDefault falls back to the article title when no explicit
// meta title was set.
func (a *Article) MetaTitleOrDefault() string {
	if a.MetaTitle != nil && *a.MetaTitle != "" {
		return *a.MetaTitle
	}
	return a.Title
}
