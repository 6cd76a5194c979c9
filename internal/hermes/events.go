package hermes

import (
	"time"

	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

type ScoreComputedEvent struct {
	EventID     string            `json:"event_id"`
	Zip         string            `json:"zip,omitempty"`
	ZipMatched  bool              `json:"zip_matched"`
	Weights     scoring.WeightSet `json:"weights"`
	TopRegion   string            `json:"top_region"`
	TopScore    float64           `json:"top_score"`
	RegionCount int               `json:"region_count"`
	Timestamp   time.Time         `json:"timestamp"`
}

type DatasetLoadedEvent struct {
	Source      string    `json:"source"`
	RegionCount int       `json:"region_count"`
	Timestamp   time.Time `json:"timestamp"`
}

type BoundaryFailedEvent struct {
	URL       string    `json:"url"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
