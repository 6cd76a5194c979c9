package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

type RegionsHandler struct {
	regions []scoring.Region
}

func NewRegionsHandler(regions []scoring.Region) *RegionsHandler {
	return &RegionsHandler{regions: regions}
}

// List handles GET /api/v1/regions
func (h *RegionsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.regions)
}

// Get handles GET /api/v1/regions/{code}
func (h *RegionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	for _, region := range h.regions {
		if strings.EqualFold(region.Code, code) {
			writeJSON(w, http.StatusOK, region)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "region not found"})
}
