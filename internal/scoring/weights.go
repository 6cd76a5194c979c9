package scoring

import (
	"fmt"
	"math"
)

// WeightSet defines the relative importance of each region factor.
// Weights are slider-ranged [0,1] in typical use but are deliberately not
// required to sum to 1, and values above 1 are accepted: scores scale
// linearly, so callers wanting normalized rankings pre-normalize themselves.
type WeightSet struct {
	Income           float64 `json:"income"`
	CostOfLiving     float64 `json:"cost_of_living"`
	CrimeRate        float64 `json:"crime_rate"`
	JobOpportunities float64 `json:"job_opportunities"`
	Climate          float64 `json:"climate"`
}

// DefaultWeights returns the neutral distribution: 0.2 per factor.
func DefaultWeights() WeightSet {
	return WeightSet{
		Income:           0.2,
		CostOfLiving:     0.2,
		CrimeRate:        0.2,
		JobOpportunities: 0.2,
		Climate:          0.2,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Income + w.CostOfLiving + w.CrimeRate + w.JobOpportunities + w.Climate
}

// Validate rejects non-finite weights. A NaN or infinite weight would
// silently corrupt every score downstream; anything finite passes.
func (w WeightSet) Validate() error {
	for _, v := range w.asList() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite weight: %f", v)
		}
	}
	return nil
}

func (w WeightSet) asList() []float64 {
	return []float64{w.Income, w.CostOfLiving, w.CrimeRate, w.JobOpportunities, w.Climate}
}
