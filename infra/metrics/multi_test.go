package metrics

import (
	"errors"
	"testing"

	"github.com/priyamshah/greenroute/core/metrics"
)

type captureSink struct {
	events []metrics.OptimizationEvent
	err    error
}

func (c *captureSink) RecordOptimization(evs []metrics.OptimizationEvent) error {
	c.events = append(c.events, evs...)
	return c.err
}

func TestMultiSinkFanout(t *testing.T) {
	a := &captureSink{}
	b := &captureSink{}
	multi := NewMultiSink(a, b)

	ev := metrics.OptimizationEvent{ResultID: "r1", Outcome: metrics.OutcomeRanked}
	if err := multi.RecordOptimization([]metrics.OptimizationEvent{ev}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("expected both sinks to receive the event, got %d and %d", len(a.events), len(b.events))
	}
}

func TestMultiSinkReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	a := &captureSink{err: boom}
	b := &captureSink{}
	multi := NewMultiSink(a, b)

	err := multi.RecordOptimization([]metrics.OptimizationEvent{{ResultID: "r1"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
