package api

import (
	"log/slog"
	"net/http"

	"github.com/MikeSquared-Agency/Atlas/internal/boundary"
)

type BoundariesHandler struct {
	client *boundary.Client
	logger *slog.Logger
}

func NewBoundariesHandler(client *boundary.Client, logger *slog.Logger) *BoundariesHandler {
	return &BoundariesHandler{client: client, logger: logger}
}

// Get handles GET /api/v1/boundaries. If the startup fetch failed, one
// retry is attempted before reporting the map data unavailable.
func (h *BoundariesHandler) Get(w http.ResponseWriter, r *http.Request) {
	data, ok := h.client.Cached()
	if !ok {
		if err := h.client.Fetch(r.Context()); err != nil {
			h.logger.Warn("boundary refetch failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "boundary data unavailable"})
			return
		}
		data, _ = h.client.Cached()
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
