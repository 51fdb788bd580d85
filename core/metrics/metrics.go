package metrics

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric represents a single metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue represents the value of a metric for one label set
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. Counters accumulate per label set,
// gauges keep the last value recorded per label set.
type Registry struct {
	metrics map[string]Metric
	values  map[string]map[string]MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]map[string]MetricValue),
	}
}

func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.record(name, Counter, labels, func(old float64) float64 { return old + value })
}

func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.record(name, Gauge, labels, func(float64) float64 { return value })
}

func (r *Registry) record(name string, typ MetricType, labels map[string]string, next func(float64) float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	metric, ok := r.metrics[name]
	if !ok || metric.Type != typ {
		return
	}

	series, ok := r.values[name]
	if !ok {
		series = make(map[string]MetricValue)
		r.values[name] = series
	}

	key := labelKey(labels)
	current := series[key]
	series[key] = MetricValue{
		Value:     next(current.Value),
		Timestamp: time.Now(),
		Labels:    copyLabels(labels),
	}
}

// Value returns the current value of the named metric for the given labels.
func (r *Registry) Value(name string, labels map[string]string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name][labelKey(labels)]
	return v.Value, ok
}

// GetMetrics returns a copy of every recorded series, ordered by label set.
func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue, len(r.values))
	for name, series := range r.values {
		keys := make([]string, 0, len(series))
		for k := range series {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		values := make([]MetricValue, 0, len(keys))
		for _, k := range keys {
			v := series[k]
			v.Labels = copyLabels(v.Labels)
			values = append(values, v)
		}
		result[name] = values
	}
	return result
}

func labelKey(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Length-prefixed so separators inside keys or values cannot collide.
	var b strings.Builder
	for _, k := range keys {
		v := labels[k]
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}

func copyLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return nil
	}
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}
