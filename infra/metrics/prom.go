package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/priyamshah/greenroute/core/metrics"
)

// PromSink records optimization events in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	candidates prometheus.Histogram
}

// NewPromSink registers optimization metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the collectors
// are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizations_total",
		Help: "Total number of route optimizations by outcome",
	}, []string{"priority", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "optimization_duration_seconds",
		Help:    "Wall time spent ranking one order",
		Buckets: prometheus.DefBuckets,
	}, []string{"priority"})
	candidates := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimization_candidates",
		Help:    "Number of route and vehicle combinations evaluated per order",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(candidates); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			candidates = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, duration: duration, candidates: candidates}, nil
}

// RecordOptimization increments the counters and observes timings for each event.
func (s *PromSink) RecordOptimization(events []metrics.OptimizationEvent) error {
	for _, e := range events {
		s.runs.WithLabelValues(e.Priority, e.Outcome).Inc()
		s.duration.WithLabelValues(e.Priority).Observe(e.Duration.Seconds())
		if e.Outcome == metrics.OutcomeRanked {
			s.candidates.Observe(float64(e.Candidates))
		}
	}
	return nil
}
