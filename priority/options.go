package priority

import (
	"github.com/daveomri/basic-js-priority-queue/core/monitoring"
)

// options defines all configuration options for a Queue.
type options struct {
	capacity int               // Initial capacity of the store and handle index
	logger   monitoring.Logger // Receives mutation and contract-violation events
	stats    monitoring.Stats  // Receives operation counters and size gauges
}

// Option is a function that configures a Queue.
type Option func(*options)

// WithCapacity pre-sizes the queue for n entries.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets the logger the queue reports to.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStats sets the metrics recorder the queue reports to.
func WithStats(s monitoring.Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 0,
		logger:   nil,
		stats:    nil,
	}
}
