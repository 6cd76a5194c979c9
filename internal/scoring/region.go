package scoring

import "github.com/MikeSquared-Agency/Atlas/internal/geo"

// Region is one scored geographic area (a US state). Factor scores are
// integers in [0,10] by dataset convention; the engine does not enforce
// the range. The region list is immutable for the process lifetime.
type Region struct {
	Name             string  `json:"name" yaml:"name"`
	Code             string  `json:"code" yaml:"code"`
	Income           int     `json:"income" yaml:"income"`
	CostOfLiving     int     `json:"cost_of_living" yaml:"cost_of_living"`
	CrimeRate        int     `json:"crime_rate" yaml:"crime_rate"`
	JobOpportunities int     `json:"job_opportunities" yaml:"job_opportunities"`
	Climate          int     `json:"climate" yaml:"climate"`
	Lat              float64 `json:"lat" yaml:"lat"`
	Lon              float64 `json:"lon" yaml:"lon"`
}

// Location returns the region's reference coordinate.
func (r Region) Location() geo.Point {
	return geo.Point{Lat: r.Lat, Lon: r.Lon}
}
