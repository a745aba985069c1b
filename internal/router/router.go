// Package router sets up all HTTP routes and middleware chains for the
// PageForge API. Compilation endpoints, published-content reads, and the
// image upload route share one global middleware stack; uploads get an
// extra per-IP rate limit.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pageforge/internal/handlers"
	"pageforge/internal/middleware"
)

// uploadRateLimit allows this many image uploads per IP per minute.
const uploadRateLimit = 30

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(layouts *handlers.Layouts, articles *handlers.Articles, images *handlers.Images) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Layout compiler.
	r.Route("/layouts", func(r chi.Router) {
		r.Post("/", layouts.Create)
		r.Post("/export", layouts.Export)
		r.Get("/{id}", layouts.Get)
	})

	// Rich-text articles.
	r.Route("/articles", func(r chi.Router) {
		r.Post("/", articles.Create)
		r.Get("/", articles.List)
		r.Get("/{slug}", articles.Get)
	})

	// Editor image uploads, rate limited per IP.
	uploadLimiter := middleware.NewRateLimiter(uploadRateLimit, time.Minute)
	r.Route("/images", func(r chi.Router) {
		r.Use(uploadLimiter.Middleware)
		r.Post("/", images.Upload)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
