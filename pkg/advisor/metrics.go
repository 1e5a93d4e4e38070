package advisor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation generation metrics
	adviseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "oraguide_advise_duration_seconds",
			Help:    "Duration of recommendation generation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	adviseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oraguide_advise_total",
			Help: "Total number of recommendation generations",
		},
		[]string{"status"},
	)
)
