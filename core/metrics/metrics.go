package metrics

import (
	"fmt"
	"time"
)

// OptimizationEvent describes one completed (or failed) optimization run.
type OptimizationEvent struct {
	ResultID    string
	Origin      string
	Destination string
	Priority    string
	Candidates  int
	Outcome     string
	Duration    time.Duration
	Time        time.Time
}

// Outcome labels attached to optimization events.
const (
	OutcomeRanked    = "ranked"
	OutcomeNoVehicle = "no_vehicle"
	OutcomeNoRoute   = "no_route"
	OutcomeDataError = "data_error"
)

// MetricsSink records optimization events for observability purposes.
type MetricsSink interface {
	RecordOptimization(events []OptimizationEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordOptimization([]OptimizationEvent) error { return nil }

// Config holds the metrics exposition settings.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
}

func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":2112"
	}
}

func (c Config) Validate() error {
	if c.PrometheusEnabled && c.PrometheusPort == "" {
		return fmt.Errorf("metrics: prometheus_port must be set when exposition is enabled")
	}
	return nil
}
