package scoring

import (
	"log/slog"
	"math"
	"sort"

	"github.com/MikeSquared-Agency/Atlas/internal/geo"
)

// DefaultProximityDecayKm is the exponential decay constant for the
// proximity multiplier. Preserved exactly for score compatibility.
const DefaultProximityDecayKm = 500.0

// ScoredRegion captures the complete scoring output for a single region.
// ProximityMultiplier is nil when no query location was supplied.
type ScoredRegion struct {
	Region
	BaseScore           float64  `json:"base_score"`
	ProximityMultiplier *float64 `json:"proximity_multiplier,omitempty"`
	FinalScore          float64  `json:"final_score"`
}

// Scorer computes weighted desirability scores with optional
// proximity adjustment. All methods are pure: inputs are never mutated
// and results are freshly allocated, so a Scorer is safe for concurrent use.
type Scorer struct {
	decayKm float64
	logger  *slog.Logger
}

// NewScorer creates a Scorer with the given decay constant. A decay of 0
// or below falls back to the default.
func NewScorer(decayKm float64, logger *slog.Logger) *Scorer {
	if decayKm <= 0 {
		decayKm = DefaultProximityDecayKm
	}
	return &Scorer{decayKm: decayKm, logger: logger}
}

// BaseScore is the weighted sum of the region's five factor scores.
// No normalization is applied.
func (s *Scorer) BaseScore(r Region, w WeightSet) float64 {
	return w.Income*float64(r.Income) +
		w.CostOfLiving*float64(r.CostOfLiving) +
		w.CrimeRate*float64(r.CrimeRate) +
		w.JobOpportunities*float64(r.JobOpportunities) +
		w.Climate*float64(r.Climate)
}

// ProximityMultiplier maps distance to a decay factor in (0,1]:
// exp(-d/decay). 1.0 at distance 0, strictly decreasing in distance.
func (s *Scorer) ProximityMultiplier(distanceKm float64) float64 {
	return math.Exp(-distanceKm / s.decayKm)
}

// FinalScore scores one region. With a query location the base score is
// boosted by proximity: final = base * (1 + multiplier). The boost can at
// most double the base score and never reduces it below the base.
func (s *Scorer) FinalScore(r Region, w WeightSet, loc *geo.Point) ScoredRegion {
	scored := ScoredRegion{Region: r, BaseScore: s.BaseScore(r, w)}
	if loc == nil {
		scored.FinalScore = scored.BaseScore
		return scored
	}
	mult := s.ProximityMultiplier(geo.HaversineKm(*loc, r.Location()))
	scored.ProximityMultiplier = &mult
	scored.FinalScore = scored.BaseScore * (1 + mult)
	return scored
}

// Rank scores every region and returns them ordered by final score
// descending. No region is filtered out.
func (s *Scorer) Rank(regions []Region, w WeightSet, loc *geo.Point) []ScoredRegion {
	out := make([]ScoredRegion, 0, len(regions))
	for _, r := range regions {
		out = append(out, s.FinalScore(r, w, loc))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})
	if s.logger != nil && len(out) > 0 {
		s.logger.Debug("ranked regions",
			"count", len(out),
			"top", out[0].Code,
			"top_score", out[0].FinalScore,
			"with_location", loc != nil,
		)
	}
	return out
}
