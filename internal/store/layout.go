// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pageforge/internal/models"
)

// LayoutStore handles all layout-related database operations.
// Layouts are insert-only: every compile produces a new row.
type LayoutStore struct {
	db *sql.DB
}

// NewLayoutStore creates a new LayoutStore with the given database connection.
func NewLayoutStore(db *sql.DB) *LayoutStore {
	return &LayoutStore{db: db}
}

// Create inserts a new layout and returns it with the database timestamps.
func (s *LayoutStore) Create(l *models.Layout) (*models.Layout, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	result := &models.Layout{}
	err := s.db.QueryRow(`
		INSERT INTO layouts (id, name, elements, generated_html, generated_css)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, elements, generated_html, generated_css, created_at
	`, l.ID, l.Name, []byte(l.Elements), l.GeneratedHTML, l.GeneratedCSS,
	).Scan(
		&result.ID, &result.Name, &result.Elements,
		&result.GeneratedHTML, &result.GeneratedCSS, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create layout: %w", err)
	}
	return result, nil
}

// FindByID retrieves a layout by its UUID. Returns nil if not found.
func (s *LayoutStore) FindByID(id uuid.UUID) (*models.Layout, error) {
	l := &models.Layout{}
	err := s.db.QueryRow(`
		SELECT id, name, elements, generated_html, generated_css, created_at
		FROM layouts WHERE id = $1
	`, id).Scan(
		&l.ID, &l.Name, &l.Elements,
		&l.GeneratedHTML, &l.GeneratedCSS, &l.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find layout by id: %w", err)
	}
	return l, nil
}

// List returns all layouts ordered by creation date descending.
func (s *LayoutStore) List() ([]models.Layout, error) {
	rows, err := s.db.Query(`
		SELECT id, name, elements, generated_html, generated_css, created_at
		FROM layouts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	var items []models.Layout
	for rows.Next() {
		var l models.Layout
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Elements,
			&l.GeneratedHTML, &l.GeneratedCSS, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan layout: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// Count returns the number of stored layouts.
func (s *LayoutStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM layouts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count layouts: %w", err)
	}
	return count, nil
}
