package monitoring

import (
	"github.com/daveomri/basic-js-priority-queue/core/metrics"
)

const (
	metricOperations = "queue_operations_total"
	metricErrors     = "queue_errors_total"
	metricSize       = "queue_size"
	metricIssued     = "queue_handles_issued"
)

// Stats collects and reports queue statistics
type stats struct {
	registry *metrics.Registry
}

func NewStats(registry *metrics.Registry) Stats {
	registry.Register(metrics.Metric{
		Name:        metricOperations,
		Type:        metrics.Counter,
		Description: "Total number of completed queue operations by operation",
	})

	registry.Register(metrics.Metric{
		Name:        metricErrors,
		Type:        metrics.Counter,
		Description: "Total number of rejected queue calls by operation and error kind",
	})

	registry.Register(metrics.Metric{
		Name:        metricSize,
		Type:        metrics.Gauge,
		Description: "Number of live entries",
	})

	registry.Register(metrics.Metric{
		Name:        metricIssued,
		Type:        metrics.Gauge,
		Description: "Number of handles ever issued",
	})

	return &stats{
		registry: registry,
	}
}

func (s *stats) RecordOperation(op string) {
	s.registry.RecordCounter(metricOperations, 1, map[string]string{
		"op": op,
	})
}

func (s *stats) RecordError(op string, kind string) {
	s.registry.RecordCounter(metricErrors, 1, map[string]string{
		"op":   op,
		"kind": kind,
	})
}

func (s *stats) SetSize(size int, issued int64) {
	s.registry.RecordGauge(metricSize, float64(size), nil)
	s.registry.RecordGauge(metricIssued, float64(issued), nil)
}

type Stats interface {
	RecordOperation(op string)
	RecordError(op string, kind string)
	SetSize(size int, issued int64)
}
