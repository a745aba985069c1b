// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pageforge/internal/archive"
	"pageforge/internal/cache"
	"pageforge/internal/markup"
	"pageforge/internal/models"
	"pageforge/internal/store"
)

// Layouts groups handlers for the visual layout compiler. Create persists
// a compiled layout, Export streams the compiled bundle as a zip download,
// and Get serves a stored layout through the artifact cache.
type Layouts struct {
	compiler    *markup.Compiler
	layoutStore *store.LayoutStore
	resultCache *cache.ResultCache
	baseURL     string
}

// NewLayouts creates a new Layouts handler group. baseURL is the public
// origin used to resolve relative image URLs in submitted elements.
func NewLayouts(compiler *markup.Compiler, layoutStore *store.LayoutStore, resultCache *cache.ResultCache, baseURL string) *Layouts {
	return &Layouts{
		compiler:    compiler,
		layoutStore: layoutStore,
		resultCache: resultCache,
		baseURL:     baseURL,
	}
}

// layoutRequest is the payload for Create and Export.
type layoutRequest struct {
	Name     string          `json:"name"`
	Elements json.RawMessage `json:"elements"`
}

// decodeLayout parses and validates the request body. Returns the decoded
// elements, the layout name, and an error message for the client ("" on
// success).
func (h *Layouts) decodeLayout(r *http.Request) (layoutRequest, []markup.Element, string) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, nil, "Invalid JSON body."
	}

	raw := bytes.TrimSpace(req.Elements)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req, nil, "Elements array is required."
	}
	if raw[0] != '[' {
		return req, nil, "Elements must be a JSON array of canvas elements."
	}

	var elements []markup.Element
	if err := json.Unmarshal(raw, &elements); err != nil {
		return req, nil, "Elements must be a JSON array of canvas elements."
	}

	if req.Name == "" {
		req.Name = "Untitled Layout"
	}
	if msg := validateLayout(req.Name, len(elements)); msg != "" {
		return req, nil, msg
	}
	return req, elements, ""
}

// Create compiles the submitted canvas elements and persists the result.
func (h *Layouts) Create(w http.ResponseWriter, r *http.Request) {
	req, elements, msg := h.decodeLayout(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result := h.compiler.Compile(elements, h.baseURL)

	layout, err := h.layoutStore.Create(&models.Layout{
		Name:          req.Name,
		Elements:      req.Elements,
		GeneratedHTML: result.HTML,
		GeneratedCSS:  result.CSS,
	})
	if err != nil {
		slog.Error("create layout failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not save layout.")
		return
	}

	slog.Info("layout compiled", "id", layout.ID, "elements", len(elements))

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data": map[string]any{
			"id":   layout.ID,
			"name": layout.Name,
			"html": layout.GeneratedHTML,
			"css":  layout.GeneratedCSS,
		},
	})
}

// Export compiles the submitted elements and streams a zip bundle with a
// standalone index.html and styles.css. Nothing is persisted.
func (h *Layouts) Export(w http.ResponseWriter, r *http.Request) {
	req, elements, msg := h.decodeLayout(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result := h.compiler.Compile(elements, h.baseURL)

	page, err := result.Page(req.Name)
	if err != nil {
		slog.Error("render page shell failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not build export bundle.")
		return
	}

	bundle, err := archive.Build([]archive.File{
		{Name: "index.html", Body: []byte(page)},
		{Name: "styles.css", Body: []byte(result.CSS)},
	})
	if err != nil {
		slog.Error("build zip failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not build export bundle.")
		return
	}

	filename := exportFilename(req.Name)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(bundle)
}

// Get serves a stored layout by ID, preferring the artifact cache.
func (h *Layouts) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid layout ID.")
		return
	}

	key := cache.LayoutKey(id.String())
	if h.resultCache != nil {
		if cached, ok := h.resultCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}
	}

	layout, err := h.layoutStore.FindByID(id)
	if err != nil {
		slog.Error("find layout failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Could not load layout.")
		return
	}
	if layout == nil {
		writeError(w, http.StatusNotFound, "Layout not found.")
		return
	}

	body, err := json.Marshal(map[string]any{
		"status": "success",
		"data":   layout,
	})
	if err != nil {
		slog.Error("encode layout failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not encode layout.")
		return
	}

	if h.resultCache != nil {
		h.resultCache.Set(ctx, key, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

var filenameSafe = regexp.MustCompile(`[^a-z0-9]+`)

// exportFilename derives a safe download name from the layout name.
func exportFilename(name string) string {
	base := filenameSafe.ReplaceAllString(strings.ToLower(name), "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "layout"
	}
	return base + ".zip"
}
