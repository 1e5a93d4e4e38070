package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "oraguide_collection_duration_seconds",
			Help:    "Time taken by a complete sample collection run",
			Buckets: []float64{60, 600, 1800, 3600, 14400, 43200, 86400},
		},
	)

	collectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oraguide_collection_total",
			Help: "Total number of sample collection runs",
		},
		[]string{"status"}, // success or error
	)

	samplingTickTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oraguide_sampling_tick_total",
			Help: "Total number of sampling ticks",
		},
		[]string{"status"}, // success or error
	)

	samplerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oraguide_sampler_duration_seconds",
			Help:    "Time taken by individual samplers",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"sampler"}, // switch-rate, archive-rate, transactions, archive-window
	)
)
