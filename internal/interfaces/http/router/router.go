// Package router wires the Chi router: middleware stack and routes.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/hapkiduki/freight-weight/internal/application/port"
	"github.com/hapkiduki/freight-weight/internal/interfaces/http/handler"
	"github.com/hapkiduki/freight-weight/internal/interfaces/http/middleware"
)

// Config contains the knobs the middleware stack needs.
type Config struct {
	// Version is reported in X-API-Version and /health.
	Version string

	// RequestTimeout bounds each request; zero disables the timeout.
	RequestTimeout time.Duration

	// MaxRequestSize caps request bodies in bytes; zero disables the cap.
	MaxRequestSize int64

	// CORSAllowedOrigins lists origins allowed by CORS.
	CORSAllowedOrigins []string

	// RateLimit enables per-client limiting when non-nil.
	RateLimit *middleware.RateLimiterConfig
}

// New builds the HTTP handler for the calculation API.
//
// Parameters:
//   - cfg: middleware configuration
//   - calc: the calculation use case
//   - log: structured logger
//
// Returns:
//   - http.Handler: the ready-to-serve router
func New(cfg Config, calc handler.Calculator, log port.Logger) http.Handler {
	h := handler.New(calc, log, cfg.Version)
	r := chi.NewRouter()

	// Order matters! Middleware is executed in the order added.
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recoverer(log))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-API-Version"},
		MaxAge:         300,
	}))
	if cfg.RateLimit != nil {
		r.Use(middleware.RateLimiter(*cfg.RateLimit))
	}
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.APIVersion(cfg.Version))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestSize))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Get("/carriers", h.ListCarriers)
		r.Post("/calculations", h.Calculate)
		r.Post("/conversions", h.Convert)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
