package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scoreComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atlas_score_computations_total",
		Help: "Number of score computations served.",
	})

	geocodeMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atlas_geocode_misses_total",
		Help: "Number of zip lookups that found no entry.",
	})

	scoreDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "atlas_score_duration_seconds",
		Help:    "Latency of a full region ranking.",
		Buckets: prometheus.DefBuckets,
	})
)
