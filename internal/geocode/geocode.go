package geocode

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Atlas/internal/geo"
)

// Resolver maps a zip code to a coordinate. A miss is a normal branch,
// not an error: scoring proceeds without a query location.
type Resolver interface {
	Resolve(zip string) (geo.Point, bool)
}

// Static is an in-memory zip table. Real deployments would swap in a
// geocoding service behind the same interface.
type Static struct {
	table map[string]geo.Point
}

// NewStatic builds a resolver over the given table.
func NewStatic(table map[string]geo.Point) *Static {
	return &Static{table: table}
}

// DefaultTable returns the built-in sample entries.
func DefaultTable() map[string]geo.Point {
	return map[string]geo.Point{
		"10001": {Lat: 40.750742, Lon: -73.99653},   // New York, NY
		"90001": {Lat: 33.973951, Lon: -118.248405}, // Los Angeles, CA
		"60601": {Lat: 41.88531, Lon: -87.62166},    // Chicago, IL
	}
}

// Load returns a Static resolver. An empty path yields the built-in
// table; otherwise the YAML file at path replaces it.
func Load(path string) (*Static, error) {
	if path == "" {
		return NewStatic(DefaultTable()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zip table: %w", err)
	}
	var f struct {
		Zips map[string]geo.Point `yaml:"zips"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse zip table: %w", err)
	}
	if len(f.Zips) == 0 {
		return nil, fmt.Errorf("zip table is empty")
	}
	return NewStatic(f.Zips), nil
}

// Resolve looks up a zip code, tolerating surrounding whitespace.
func (s *Static) Resolve(zip string) (geo.Point, bool) {
	p, ok := s.table[strings.TrimSpace(zip)]
	return p, ok
}

// Len reports the number of known zip codes.
func (s *Static) Len() int { return len(s.table) }
