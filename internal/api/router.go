package api

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Atlas/internal/boundary"
	"github.com/MikeSquared-Agency/Atlas/internal/geocode"
	"github.com/MikeSquared-Agency/Atlas/internal/hermes"
	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

func NewRouter(regions []scoring.Region, scorer *scoring.Scorer, resolver geocode.Resolver, b *boundary.Client, h hermes.Client, defaults scoring.WeightSet, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	computations := &atomic.Int64{}

	scores := NewScoresHandler(regions, scorer, resolver, h, defaults, computations, logger)
	regionsH := NewRegionsHandler(regions)
	geocodeH := NewGeocodeHandler(resolver)
	boundaries := NewBoundariesHandler(b, logger)
	admin := NewAdminHandler(regions, resolver, computations)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scores", scores.Compute)

		r.Get("/regions", regionsH.List)
		r.Get("/regions/{code}", regionsH.Get)

		r.Get("/geocode/{zip}", geocodeH.Lookup)
		r.Get("/trends/{zip}", geocodeH.Trends)
		r.Get("/info/{zip}", geocodeH.Info)

		r.Get("/boundaries", boundaries.Get)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
