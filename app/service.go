// Package app wires the configuration, the decision engine, the metrics
// sinks and the result bus into a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/priyamshah/greenroute/config"
	"github.com/priyamshah/greenroute/core/costs"
	"github.com/priyamshah/greenroute/core/emissions"
	coremetrics "github.com/priyamshah/greenroute/core/metrics"
	"github.com/priyamshah/greenroute/core/model"
	"github.com/priyamshah/greenroute/core/optimizer"
	"github.com/priyamshah/greenroute/infra/fleet"
	"github.com/priyamshah/greenroute/infra/logger"
	"github.com/priyamshah/greenroute/infra/metrics"
	"github.com/priyamshah/greenroute/internal/eventbus"
)

// Service orchestrates optimization runs over a delivery plan.
type Service struct {
	Engine *optimizer.Engine

	bus         *eventbus.Bus[optimizer.RankedResult]
	sink        coremetrics.MetricsSink
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	engine, err := optimizer.New(
		cfg.Engine,
		costs.NewModel(cfg.Costs),
		emissions.NewModel(cfg.Emissions),
		logger.New("optimizer"),
	)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	return &Service{
		Engine:      engine,
		bus:         eventbus.New[optimizer.RankedResult](),
		sink:        sink,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Subscribe returns a subscription delivering every ranked result.
func (s *Service) Subscribe(buffer int) *eventbus.Sub[optimizer.RankedResult] {
	return s.bus.Subscribe(buffer)
}

// OptimizeOrder runs one order through the engine, records the outcome and
// publishes the result on the bus.
func (s *Service) OptimizeOrder(
	ctx context.Context,
	order model.OrderRequest,
	routes []model.RouteRecord,
	vehicles []model.VehicleRecord,
	locations map[string]model.Location,
) (*optimizer.RankedResult, error) {
	start := time.Now()
	res, err := s.Engine.Optimize(ctx, order, routes, vehicles, locations)

	ev := coremetrics.OptimizationEvent{
		Origin:      order.Origin,
		Destination: order.Destination,
		Priority:    order.Priority.String(),
		Duration:    time.Since(start),
		Time:        time.Now(),
	}
	if err != nil {
		ev.Outcome = classifyFailure(err)
	} else {
		ev.ResultID = res.ID
		ev.Candidates = res.CombinationsEvaluated
		ev.Outcome = coremetrics.OutcomeRanked
	}
	if serr := s.sink.RecordOptimization([]coremetrics.OptimizationEvent{ev}); serr != nil {
		s.log.Warnf("metrics sink: %v", serr)
	}
	if err != nil {
		return nil, err
	}

	s.bus.Publish(*res)
	return res, nil
}

// RunPlan optimizes every order in the plan. Per-order feasibility failures
// are logged and skipped; data errors abort the run.
func (s *Service) RunPlan(ctx context.Context, plan *fleet.Plan) ([]optimizer.RankedResult, error) {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	routes := plan.RouteRecords()
	vehicles, err := plan.VehicleRecords()
	if err != nil {
		return nil, err
	}
	orders, err := plan.OrderRequests()
	if err != nil {
		return nil, err
	}
	locations := plan.LocationIndex()

	results := make([]optimizer.RankedResult, 0, len(orders))
	for _, order := range orders {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		res, err := s.OptimizeOrder(ctx, order, routes, vehicles, locations)
		if err != nil {
			if feasibilityFailure(err) {
				s.log.Warnf("order %s -> %s skipped: %v", order.Origin, order.Destination, err)
				continue
			}
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

// Close releases the result bus.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}

func classifyFailure(err error) string {
	var nf *optimizer.NoFeasibleVehicleError
	switch {
	case errors.As(err, &nf), errors.Is(err, optimizer.ErrEmptyCandidateSet):
		return coremetrics.OutcomeNoVehicle
	case errors.Is(err, optimizer.ErrNoRouteData):
		return coremetrics.OutcomeNoRoute
	default:
		return coremetrics.OutcomeDataError
	}
}

// feasibilityFailure reports whether the error means "no viable option for
// this order" rather than broken reference data.
func feasibilityFailure(err error) bool {
	var nf *optimizer.NoFeasibleVehicleError
	return errors.As(err, &nf) ||
		errors.Is(err, optimizer.ErrNoRouteData) ||
		errors.Is(err, optimizer.ErrEmptyCandidateSet)
}
