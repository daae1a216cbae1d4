package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initStatementMetrics()
	r.initNetworkMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordTensorBuild records a finished tensor build
func (r *Registry) RecordTensorBuild(status string, rows int, duration time.Duration) {
	r.TensorBuildsTotal.WithLabelValues(status).Inc()
	r.TensorBuildDuration.Observe(duration.Seconds())
	if status == StatusSuccess {
		r.TensorRowsProcessed.Add(float64(rows))
		r.TensorLastRows.Set(float64(rows))
	}
}

// RecordBuildFailure records why a tensor build aborted
func (r *Registry) RecordBuildFailure(reason string) {
	r.TensorBuildFailures.WithLabelValues(reason).Inc()
}

// RecordNetwork records a congruence or conflict computation
func (r *Registry) RecordNetwork(kind, normalization, status string, edges int, duration time.Duration) {
	r.NetworksTotal.WithLabelValues(kind, normalization, status).Inc()
	r.NetworkDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if status == StatusSuccess {
		r.NetworkEdgesRetained.WithLabelValues(kind).Observe(float64(edges))
	}
}

// RecordCentralization records a degree centralization computation
func (r *Registry) RecordCentralization(status string) {
	r.CentralizationsTotal.WithLabelValues(status).Inc()
}

// Status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
