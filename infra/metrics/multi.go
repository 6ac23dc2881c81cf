package metrics

import "github.com/priyamshah/greenroute/core/metrics"

// MultiSink fanouts optimization events to multiple sinks.
type MultiSink struct {
	Sinks []metrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...metrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordOptimization forwards the events to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordOptimization(events []metrics.OptimizationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordOptimization(events); err != nil {
			return err
		}
	}
	return nil
}
