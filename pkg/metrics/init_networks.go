package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.NetworksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "discourse_networks_total",
			Help: "Total number of actor network computations",
		},
		[]string{"kind", "normalization", "status"},
	)

	r.NetworkDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discourse_network_duration_seconds",
			Help:    "Actor network computation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"kind"},
	)

	r.NetworkEdgesRetained = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discourse_network_edges_retained",
			Help:    "Actor pairs at or above the min concepts threshold",
			Buckets: []float64{0, 1, 10, 100, 1000, 10000},
		},
		[]string{"kind"},
	)

	r.CentralizationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "discourse_centralizations_total",
			Help: "Total number of degree centralization computations",
		},
		[]string{"status"},
	)
}
