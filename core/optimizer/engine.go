// Package optimizer is the multi-objective decision core: it enumerates
// feasible (route, vehicle) candidates for an order, derives time, cost and
// CO2 metrics, normalizes them within the candidate set and selects the
// fastest, cheapest, greenest and balanced options with quantified
// trade-offs between them.
//
// The engine is a pure function over caller-supplied reference tables. It
// performs no I/O and keeps no state between calls; concurrent calls never
// interfere.
package optimizer

import (
	"context"

	"github.com/priyamshah/greenroute/core/costs"
	"github.com/priyamshah/greenroute/core/emissions"
	"github.com/priyamshah/greenroute/core/logger"
	"github.com/priyamshah/greenroute/core/model"
)

// Engine wires the candidate generator, the scorer, the narrator and the
// recommender into one optimization call.
type Engine struct {
	cfg    Config
	gen    Generator
	scorer *Scorer
	log    logger.Logger
}

// New creates an Engine. A nil logger disables logging.
func New(cfg Config, cm costs.Model, em emissions.Model, log logger.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{
		cfg:    cfg,
		gen:    NewGenerator(cfg),
		scorer: NewScorer(cfg, cm, em),
		log:    log,
	}, nil
}

// AddObjective registers an extra composite objective on the scorer.
func (e *Engine) AddObjective(o Objective) {
	e.scorer.AddObjective(o)
}

// Optimize runs one full optimization call for the order over the given
// reference tables.
func (e *Engine) Optimize(
	ctx context.Context,
	order model.OrderRequest,
	routes []model.RouteRecord,
	vehicles []model.VehicleRecord,
	locations map[string]model.Location,
) (*RankedResult, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	e.log.Infof("optimizing %s -> %s (%.1f kg, %s)", order.Origin, order.Destination, order.WeightKg, order.Priority)

	cands, err := e.gen.Generate(order, routes, vehicles, locations)
	if err != nil {
		return nil, err
	}
	e.log.Debugf("generated %d candidates", len(cands))

	res, err := e.scorer.ScoreAndRank(ctx, order, cands)
	if err != nil {
		return nil, err
	}

	res.Statements = Narrate(res)
	res.Recommendation = Recommend(res)

	e.log.Debugw("optimization complete", map[string]any{
		"result_id":  res.ID,
		"candidates": res.CombinationsEvaluated,
		"fastest":    res.FastestCandidate().Vehicle.ID,
		"cheapest":   res.CheapestCandidate().Vehicle.ID,
		"greenest":   res.GreenestCandidate().Vehicle.ID,
		"balanced":   res.BalancedCandidate().Vehicle.ID,
	})
	return res, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
