package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Atlas/internal/geocode"
	"github.com/MikeSquared-Agency/Atlas/internal/market"
)

type GeocodeHandler struct {
	resolver geocode.Resolver
}

func NewGeocodeHandler(resolver geocode.Resolver) *GeocodeHandler {
	return &GeocodeHandler{resolver: resolver}
}

// Lookup handles GET /api/v1/geocode/{zip}
func (h *GeocodeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	zip := chi.URLParam(r, "zip")
	p, ok := h.resolver.Resolve(zip)
	if !ok {
		geocodeMisses.Inc()
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "zip code not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"zip": zip, "location": p})
}

// Trends handles GET /api/v1/trends/{zip}. An unmatched zip still returns
// the series, labelled "N/A" the way the chart title does.
func (h *GeocodeHandler) Trends(w http.ResponseWriter, r *http.Request) {
	zip := chi.URLParam(r, "zip")
	if _, ok := h.resolver.Resolve(zip); !ok {
		zip = "N/A"
	}
	writeJSON(w, http.StatusOK, market.TrendsFor(zip))
}

// Info handles GET /api/v1/info/{zip}
func (h *GeocodeHandler) Info(w http.ResponseWriter, r *http.Request) {
	zip := chi.URLParam(r, "zip")
	if _, ok := h.resolver.Resolve(zip); !ok {
		zip = "N/A"
	}
	writeJSON(w, http.StatusOK, market.InfoFor(zip))
}
