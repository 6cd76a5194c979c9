package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Atlas/internal/geo"
	"github.com/MikeSquared-Agency/Atlas/internal/geocode"
	"github.com/MikeSquared-Agency/Atlas/internal/hermes"
	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

type ScoresHandler struct {
	regions      []scoring.Region
	scorer       *scoring.Scorer
	resolver     geocode.Resolver
	hermes       hermes.Client
	defaults     scoring.WeightSet
	computations *atomic.Int64
	logger       *slog.Logger
}

func NewScoresHandler(regions []scoring.Region, scorer *scoring.Scorer, resolver geocode.Resolver, h hermes.Client, defaults scoring.WeightSet, computations *atomic.Int64, logger *slog.Logger) *ScoresHandler {
	return &ScoresHandler{
		regions:      regions,
		scorer:       scorer,
		resolver:     resolver,
		hermes:       h,
		defaults:     defaults,
		computations: computations,
		logger:       logger,
	}
}

type ComputeScoresRequest struct {
	Weights *scoring.WeightSet `json:"weights,omitempty"`
	Zip     string             `json:"zip,omitempty"`
}

type ComputeScoresResponse struct {
	Zip        string                 `json:"zip,omitempty"`
	ZipMatched bool                   `json:"zip_matched"`
	Weights    scoring.WeightSet      `json:"weights"`
	Regions    []scoring.ScoredRegion `json:"regions"`
}

// Compute handles POST /api/v1/scores. An omitted weight set falls back to
// the configured defaults; an unknown zip scores on base only.
func (h *ScoresHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	weights := h.defaults
	if req.Weights != nil {
		weights = *req.Weights
	}
	if err := weights.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var loc *geo.Point
	matched := false
	if req.Zip != "" {
		if p, ok := h.resolver.Resolve(req.Zip); ok {
			loc = &p
			matched = true
		} else {
			geocodeMisses.Inc()
		}
	}

	start := time.Now()
	ranked := h.scorer.Rank(h.regions, weights, loc)
	scoreDuration.Observe(time.Since(start).Seconds())
	scoreComputations.Inc()
	h.computations.Add(1)

	if h.hermes != nil && len(ranked) > 0 {
		err := h.hermes.Publish(hermes.SubjectScoreComputed, hermes.ScoreComputedEvent{
			EventID:     uuid.NewString(),
			Zip:         req.Zip,
			ZipMatched:  matched,
			Weights:     weights,
			TopRegion:   ranked[0].Code,
			TopScore:    ranked[0].FinalScore,
			RegionCount: len(ranked),
			Timestamp:   time.Now(),
		})
		if err != nil {
			h.logger.Warn("failed to publish score event", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, ComputeScoresResponse{
		Zip:        req.Zip,
		ZipMatched: matched,
		Weights:    weights,
		Regions:    ranked,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
