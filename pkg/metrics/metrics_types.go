package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is what the tensor builder and network engine report to.
type Recorder interface {
	RecordTensorBuild(status string, rows int, duration time.Duration)
	RecordBuildFailure(reason string)
	RecordNetwork(kind, normalization, status string, edges int, duration time.Duration)
	RecordCentralization(status string)
}

// Registry holds all metrics for the application
type Registry struct {
	// Tensor build metrics
	TensorBuildsTotal   *prometheus.CounterVec
	TensorBuildDuration prometheus.Histogram
	TensorRowsProcessed prometheus.Counter
	TensorBuildFailures *prometheus.CounterVec
	TensorLastRows      prometheus.Gauge

	// Network metrics
	NetworksTotal        *prometheus.CounterVec
	NetworkDuration      *prometheus.HistogramVec
	NetworkEdgesRetained *prometheus.HistogramVec
	CentralizationsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NopRecorder drops every observation.
type NopRecorder struct{}

func (NopRecorder) RecordTensorBuild(string, int, time.Duration)             {}
func (NopRecorder) RecordBuildFailure(string)                                {}
func (NopRecorder) RecordNetwork(string, string, string, int, time.Duration) {}
func (NopRecorder) RecordCentralization(string)                              {}

// OrNop returns r, or a NopRecorder when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return NopRecorder{}
	}
	return r
}
