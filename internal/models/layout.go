// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Layout is a persisted canvas export: the raw element list as submitted
// plus the compiled HTML and CSS. Layouts are insert-only — each export is
// a fresh row, never an update.
type Layout struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Elements      json.RawMessage `json:"elements"`
	GeneratedHTML string          `json:"generated_html"`
	GeneratedCSS  string          `json:"generated_css"`
	CreatedAt     time.Time       `json:"created_at"`
}
