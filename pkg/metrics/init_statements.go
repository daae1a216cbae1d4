package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initStatementMetrics() {
	r.TensorBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "discourse_tensor_builds_total",
			Help: "Total number of statement tensor builds",
		},
		[]string{"status"},
	)

	r.TensorBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discourse_tensor_build_duration_seconds",
			Help:    "Statement tensor build duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.TensorRowsProcessed = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "discourse_tensor_rows_processed_total",
			Help: "Total number of statement rows written into tensors",
		},
	)

	r.TensorBuildFailures = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "discourse_tensor_build_failures_total",
			Help: "Tensor builds aborted, by reason",
		},
		[]string{"reason"},
	)

	r.TensorLastRows = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "discourse_tensor_last_rows",
			Help: "Row count of the most recent successful build",
		},
	)
}
