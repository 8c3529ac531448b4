package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/blakeyoder/blakeyoderdotcom/internal/contact"
	"github.com/blakeyoder/blakeyoderdotcom/internal/ratelimit"
)

// requestTimeout bounds total request handling, covering the outbound mail
// send and profile fetch
const requestTimeout = 60 * time.Second

// RouterConfig carries the dependencies for the API router
type RouterConfig struct {
	Mailer      Mailer
	Limiter     *ratelimit.Limiter
	Detector    *contact.Detector
	Previews    ProfileFetcher
	MaxBodySize int64
}

// NewRouter creates a chi router with all endpoints and middleware
func NewRouter(cfg RouterConfig) http.Handler {
	h := &Handler{
		mailer:   cfg.Mailer,
		limiter:  cfg.Limiter,
		detector: cfg.Detector,
		previews: cfg.Previews,
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Heartbeat("/ping"))

	if cfg.MaxBodySize > 0 {
		r.Use(middleware.RequestSize(cfg.MaxBodySize))
	}

	// the form and the preview widget are browser calls from the site
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://blakeyoder.com", "https://www.blakeyoder.com", "http://localhost:3000"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// non-POST on the contact route must answer JSON, not chi's plain 405
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, methodNotAllowedResponse{Message: "Method not allowed"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Post("/contact", h.handleContact)
		r.Get("/linkedin-preview", h.handlePreview)
	})

	return r
}
