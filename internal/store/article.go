// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pageforge/internal/models"
)

// ArticleStore handles all article-related database operations.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, title, content, slug, is_published, published_at,
	       styles, layout_id, meta_title, meta_description, keywords,
	       created_at, updated_at`

// scanArticle reads one row into an Article. Keywords are stored as a
// JSONB array because database/sql cannot scan text[] directly.
func scanArticle(row interface{ Scan(...any) error }) (*models.Article, error) {
	a := &models.Article{}
	var keywords []byte
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Slug, &a.IsPublished, &a.PublishedAt,
		&a.Styles, &a.LayoutID, &a.MetaTitle, &a.MetaDescription, &keywords,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &a.Keywords); err != nil {
			return nil, fmt.Errorf("decode keywords: %w", err)
		}
	}
	return a, nil
}

// Create inserts a new article and returns it with the database timestamps.
// The caller is responsible for providing a unique slug.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.IsPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	keywords, err := json.Marshal(a.Keywords)
	if err != nil {
		return nil, fmt.Errorf("encode keywords: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO articles (id, title, content, slug, is_published, published_at,
		                      styles, layout_id, meta_title, meta_description, keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+articleColumns,
		a.ID, a.Title, a.Content, a.Slug, a.IsPublished, a.PublishedAt,
		[]byte(a.Styles), a.LayoutID, a.MetaTitle, a.MetaDescription, keywords,
	)
	result, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return result, nil
}

// FindBySlug retrieves an article by its slug. Returns nil if not found.
func (s *ArticleStore) FindBySlug(slug string) (*models.Article, error) {
	row := s.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM articles WHERE slug = $1
	`, slug)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// SlugExists reports whether any article already uses the given slug.
func (s *ArticleStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// ListPublished returns all published articles ordered by publish date
// descending. Used for the public article index.
func (s *ArticleStore) ListPublished() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT ` + articleColumns + `
		FROM articles
		WHERE is_published = true
		ORDER BY published_at DESC NULLS LAST
	`)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// Delete removes an article by ID.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
