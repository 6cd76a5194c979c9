package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/MikeSquared-Agency/Atlas/internal/geocode"
	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

type AdminHandler struct {
	regions      []scoring.Region
	resolver     geocode.Resolver
	computations *atomic.Int64
	started      time.Time
}

func NewAdminHandler(regions []scoring.Region, resolver geocode.Resolver, computations *atomic.Int64) *AdminHandler {
	return &AdminHandler{
		regions:      regions,
		resolver:     resolver,
		computations: computations,
		started:      time.Now(),
	}
}

type StatsResponse struct {
	Regions       int     `json:"regions"`
	ZipCodes      int     `json:"zip_codes"`
	Computations  int64   `json:"computations"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Stats handles GET /api/v1/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{
		Regions:       len(h.regions),
		Computations:  h.computations.Load(),
		UptimeSeconds: time.Since(h.started).Seconds(),
	}
	if sized, ok := h.resolver.(interface{ Len() int }); ok {
		resp.ZipCodes = sized.Len()
	}
	writeJSON(w, http.StatusOK, resp)
}
