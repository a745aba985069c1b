// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pageforge/internal/cache"
	"pageforge/internal/docx"
	"pageforge/internal/mdout"
	"pageforge/internal/models"
	"pageforge/internal/pdfout"
	"pageforge/internal/richtext"
	"pageforge/internal/sanitize"
	"pageforge/internal/slugger"
	"pageforge/internal/store"
	"pageforge/internal/styles"
)

// Articles groups handlers for rich-text articles. Create sanitizes and
// stores the submitted HTML and streams the compiled document back as a
// file download; List and Get serve published articles through the
// artifact cache.
type Articles struct {
	compiler     *richtext.Compiler
	articleStore *store.ArticleStore
	resultCache  *cache.ResultCache
}

// NewArticles creates a new Articles handler group.
func NewArticles(compiler *richtext.Compiler, articleStore *store.ArticleStore, resultCache *cache.ResultCache) *Articles {
	return &Articles{
		compiler:     compiler,
		articleStore: articleStore,
		resultCache:  resultCache,
	}
}

// articleRequest is the payload for Create.
type articleRequest struct {
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Styles          json.RawMessage `json:"styles"`
	IsPublished     bool            `json:"is_published"`
	LayoutID        *uuid.UUID      `json:"layout_id"`
	MetaTitle       *string         `json:"meta_title"`
	MetaDescription *string         `json:"meta_description"`
	Keywords        []string        `json:"keywords"`
}

// Create stores a new article. The content HTML is sanitized before
// persistence and a unique slug is derived from the title. The compiled
// document is streamed back as an attachment named after the slug;
// ?format=docx|pdf|md selects the encoder, defaulting to docx.
func (h *Articles) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if msg := validateArticle(req.Title, req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	metaDesc := ""
	if req.MetaDescription != nil {
		metaDesc = *req.MetaDescription
	}
	if msg := validateArticleMetadata(metaDesc, req.Keywords); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "docx"
	}
	if format != "docx" && format != "pdf" && format != "md" {
		writeError(w, http.StatusBadRequest, "Unknown format. Supported: docx, pdf, md.")
		return
	}

	content := sanitize.Clean(req.Content)

	slug, err := slugger.Assign(ctx, req.Title, func(ctx context.Context, candidate string) (bool, error) {
		return h.articleStore.SlugExists(candidate)
	})
	if err != nil {
		slog.Error("assign slug failed", "error", err, "title", req.Title)
		writeError(w, http.StatusInternalServerError, "Could not assign slug.")
		return
	}

	article, err := h.articleStore.Create(&models.Article{
		Title:           req.Title,
		Content:         content,
		Slug:            slug,
		IsPublished:     req.IsPublished,
		Styles:          req.Styles,
		LayoutID:        req.LayoutID,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
	})
	if err != nil {
		slog.Error("create article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not save article.")
		return
	}

	if h.resultCache != nil {
		h.resultCache.Delete(ctx, cache.ArticleListKey())
	}

	slog.Info("article created", "id", article.ID, "slug", article.Slug, "published", article.IsPublished)

	h.streamDocument(w, article, format)
}

// streamDocument compiles the article into the requested download format
// and writes it as an attachment named after the slug.
func (h *Articles) streamDocument(w http.ResponseWriter, article *models.Article, format string) {
	var (
		body        []byte
		contentType string
	)

	switch format {
	case "md":
		md, err := mdout.Render(article.Title, article.Content)
		if err != nil {
			slog.Error("markdown render failed", "error", err, "slug", article.Slug)
			writeError(w, http.StatusInternalServerError, "Could not render document.")
			return
		}
		body, contentType = []byte(md), mdout.ContentType

	case "docx", "pdf":
		base := styles.StyleMap{}
		if len(article.Styles) > 0 {
			if err := json.Unmarshal(article.Styles, &base); err != nil {
				slog.Warn("decode article styles failed", "error", err, "slug", article.Slug)
				base = styles.StyleMap{}
			}
		}
		doc := &richtext.Document{
			Title:      article.Title,
			Paragraphs: h.compiler.Compile(article.Content, base),
		}

		var err error
		if format == "docx" {
			body, err = docx.Render(doc)
			contentType = docx.ContentType
		} else {
			body, err = pdfout.Render(doc)
			contentType = pdfout.ContentType
		}
		if err != nil {
			slog.Error("document render failed", "error", err, "format", format, "slug", article.Slug)
			writeError(w, http.StatusInternalServerError, "Could not render document.")
			return
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", article.Slug+"."+format))
	w.WriteHeader(http.StatusCreated)
	w.Write(body)
}

// List serves the published article index through the artifact cache.
func (h *Articles) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := cache.ArticleListKey()
	if h.resultCache != nil {
		if cached, ok := h.resultCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}
	}

	articles, err := h.articleStore.ListPublished()
	if err != nil {
		slog.Error("list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not load articles.")
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}

	body, err := json.Marshal(map[string]any{
		"status": "success",
		"data":   articles,
	})
	if err != nil {
		slog.Error("encode articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not encode articles.")
		return
	}

	if h.resultCache != nil {
		h.resultCache.Set(ctx, key, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// Get serves a single article by slug, preferring the artifact cache.
func (h *Articles) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	key := cache.ArticleKey(slug)
	if h.resultCache != nil {
		if cached, ok := h.resultCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}
	}

	article, err := h.articleStore.FindBySlug(slug)
	if err != nil {
		slog.Error("find article failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "Could not load article.")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "Article not found.")
		return
	}

	body, err := json.Marshal(map[string]any{
		"status": "success",
		"data":   article,
	})
	if err != nil {
		slog.Error("encode article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not encode article.")
		return
	}

	if h.resultCache != nil {
		h.resultCache.Set(ctx, key, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
