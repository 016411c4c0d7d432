package httpapi

import (
	"net/http"
	"time"

	"server/internal/http/handlers"
	"server/internal/infra"
	appmw "server/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter wires middleware and the versioned API routes.
func NewRouter(cfg *infra.Config, logger zerolog.Logger, app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(appmw.Logger(logger))
	r.Use(appmw.CORS(cfg.CORSAllowedOrigins))
	r.Use(appmw.RateLimit(cfg.RateLimitPerMin, time.Minute))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/patterns", app.ListPatterns)
		r.Post("/generate", app.Generate)
		r.Post("/generate/prompt", app.GenerateFromPrompt)
	})

	return r
}
