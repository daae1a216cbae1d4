package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.TensorBuildsTotal == nil {
		t.Error("TensorBuildsTotal not initialized")
	}
	if r.NetworksTotal == nil {
		t.Error("NetworksTotal not initialized")
	}
	if r.CentralizationsTotal == nil {
		t.Error("CentralizationsTotal not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordTensorBuild(t *testing.T) {
	r := NewRegistry()

	r.RecordTensorBuild(StatusSuccess, 120, 10*time.Millisecond)
	r.RecordTensorBuild(StatusSuccess, 30, 5*time.Millisecond)
	r.RecordTensorBuild(StatusError, 999, time.Millisecond)

	success, err := r.TensorBuildsTotal.GetMetricWithLabelValues(StatusSuccess)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, success); got != 2 {
		t.Errorf("success builds = %v, want 2", got)
	}

	// Failed builds do not count rows
	if got := counterValue(t, r.TensorRowsProcessed); got != 150 {
		t.Errorf("rows processed = %v, want 150", got)
	}

	var gauge dto.Metric
	if err := r.TensorLastRows.Write(&gauge); err != nil {
		t.Fatalf("Failed to write gauge: %v", err)
	}
	if gauge.Gauge.GetValue() != 30 {
		t.Errorf("last rows = %v, want 30", gauge.Gauge.GetValue())
	}
}

func TestRecordBuildFailure(t *testing.T) {
	r := NewRegistry()

	r.RecordBuildFailure("invalid_key")
	r.RecordBuildFailure("invalid_key")

	c, err := r.TensorBuildFailures.GetMetricWithLabelValues("invalid_key")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 2 {
		t.Errorf("failures = %v, want 2", got)
	}
}

func TestRecordNetwork(t *testing.T) {
	r := NewRegistry()

	r.RecordNetwork("congruence", "avg", StatusSuccess, 4, 2*time.Millisecond)
	r.RecordNetwork("conflict", "cosine", StatusError, 0, time.Millisecond)

	c, err := r.NetworksTotal.GetMetricWithLabelValues("congruence", "avg", StatusSuccess)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 1 {
		t.Errorf("congruence networks = %v, want 1", got)
	}

	c, err = r.NetworksTotal.GetMetricWithLabelValues("conflict", "cosine", StatusError)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 1 {
		t.Errorf("conflict errors = %v, want 1", got)
	}
}

func TestRecordCentralization(t *testing.T) {
	r := NewRegistry()
	r.RecordCentralization(StatusSuccess)

	c, err := r.CentralizationsTotal.GetMetricWithLabelValues(StatusSuccess)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 1 {
		t.Errorf("centralizations = %v, want 1", got)
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(NopRecorder); !ok {
		t.Error("OrNop(nil) should return NopRecorder")
	}

	r := NewRegistry()
	if OrNop(r) != Recorder(r) {
		t.Error("OrNop should return the given recorder unchanged")
	}
}
