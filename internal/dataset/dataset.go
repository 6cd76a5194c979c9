package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

// Default returns the built-in ten-state table. Factor scores are on the
// 0-10 scale; coordinates are state centroids.
func Default() []scoring.Region {
	return []scoring.Region{
		{Name: "California", Code: "CA", Income: 8, CostOfLiving: 7, CrimeRate: 4, JobOpportunities: 9, Climate: 8, Lat: 36.7783, Lon: -119.4179},
		{Name: "Texas", Code: "TX", Income: 7, CostOfLiving: 5, CrimeRate: 6, JobOpportunities: 8, Climate: 7, Lat: 31.9686, Lon: -99.9018},
		{Name: "New York", Code: "NY", Income: 9, CostOfLiving: 6, CrimeRate: 5, JobOpportunities: 9, Climate: 6, Lat: 42.1657, Lon: -74.9481},
		{Name: "Florida", Code: "FL", Income: 6, CostOfLiving: 6, CrimeRate: 7, JobOpportunities: 7, Climate: 9, Lat: 27.9944, Lon: -81.7603},
		{Name: "Illinois", Code: "IL", Income: 7, CostOfLiving: 5, CrimeRate: 6, JobOpportunities: 7, Climate: 6, Lat: 40.0, Lon: -89.0},
		{Name: "Pennsylvania", Code: "PA", Income: 7, CostOfLiving: 6, CrimeRate: 5, JobOpportunities: 7, Climate: 5, Lat: 41.2033, Lon: -77.1945},
		{Name: "Ohio", Code: "OH", Income: 6, CostOfLiving: 5, CrimeRate: 6, JobOpportunities: 7, Climate: 5, Lat: 40.3675, Lon: -82.9962},
		{Name: "Georgia", Code: "GA", Income: 7, CostOfLiving: 6, CrimeRate: 5, JobOpportunities: 7, Climate: 8, Lat: 32.1656, Lon: -82.9001},
		{Name: "North Carolina", Code: "NC", Income: 7, CostOfLiving: 6, CrimeRate: 5, JobOpportunities: 7, Climate: 7, Lat: 35.7596, Lon: -79.0193},
		{Name: "Michigan", Code: "MI", Income: 6, CostOfLiving: 5, CrimeRate: 7, JobOpportunities: 6, Climate: 4, Lat: 44.3148, Lon: -85.6024},
	}
}

type regionsFile struct {
	Regions []scoring.Region `yaml:"regions"`
}

// Load returns the region table. An empty path yields the built-in
// default; otherwise the YAML file at path replaces it entirely.
func Load(path string) ([]scoring.Region, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regions: %w", err)
	}
	var f regionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}
	if err := validate(f.Regions); err != nil {
		return nil, err
	}
	return f.Regions, nil
}

func validate(regions []scoring.Region) error {
	if len(regions) == 0 {
		return fmt.Errorf("region table is empty")
	}
	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		if r.Code == "" {
			return fmt.Errorf("region %q has no code", r.Name)
		}
		if seen[r.Code] {
			return fmt.Errorf("duplicate region code: %s", r.Code)
		}
		seen[r.Code] = true
	}
	return nil
}
