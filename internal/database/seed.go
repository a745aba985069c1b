package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Seed populates the database with initial development data.
// It inserts a small sample layout so the API has something to serve
// on a fresh install. Safe to call repeatedly.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM layouts").Scan(&count); err != nil {
		return fmt.Errorf("seed check layouts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	elements := `[{"id":1,"type":"header","position":{"x":40,"y":32},"content":"Welcome to PageForge"}]`
	html := `<div class="pf-canvas"><div id="el-header-1" class="pf-element pf-header"><h1>Welcome to PageForge</h1></div></div>`
	css := `#el-header-1 { left: 40px; top: 32px; }`

	id := uuid.New()
	_, err := db.Exec(`
		INSERT INTO layouts (id, name, elements, generated_html, generated_css)
		VALUES ($1, $2, $3, $4, $5)
	`, id, "Sample Layout", elements, html, css)
	if err != nil {
		return fmt.Errorf("seed insert layout: %w", err)
	}

	slog.Info("database seeded with sample layout", "id", id)
	return nil
}
