package geo

import (
	"math"
	"testing"
)

func TestHaversineIdenticalPoints(t *testing.T) {
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 36.7783, Lon: -119.4179},
		{Lat: -45.5, Lon: 170.2},
		{Lat: 90, Lon: 0},
	}
	for _, p := range points {
		if d := HaversineKm(p, p); d != 0 {
			t.Errorf("distance(%v, %v) = %f, expected 0", p, p, d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Point{Lat: 40.750742, Lon: -73.99653}
	b := Point{Lat: 33.973951, Lon: -118.248405}
	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("asymmetric: %f vs %f", ab, ba)
	}
}

func TestHaversineAntipodal(t *testing.T) {
	a := Point{Lat: 0, Lon: 0}
	b := Point{Lat: 0, Lon: 180}
	want := math.Pi * EarthRadiusKm
	if d := HaversineKm(a, b); math.Abs(d-want) > 1.0 {
		t.Errorf("antipodal distance = %f, expected ~%f", d, want)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Los Angeles (zip 90001) to the California centroid is ~329 km.
	la := Point{Lat: 33.973951, Lon: -118.248405}
	ca := Point{Lat: 36.7783, Lon: -119.4179}
	d := HaversineKm(la, ca)
	if d < 325 || d > 335 {
		t.Errorf("LA to CA centroid = %f km, expected ~329", d)
	}
}
