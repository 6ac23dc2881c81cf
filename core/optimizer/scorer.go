package optimizer

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/priyamshah/greenroute/core/costs"
	"github.com/priyamshah/greenroute/core/emissions"
	"github.com/priyamshah/greenroute/core/model"
)

// Scorer derives per-candidate metrics, normalizes them across the candidate
// set and selects the per-axis winners. It is a pure function over its
// inputs: calling it twice on the same candidate set yields identical
// results.
type Scorer struct {
	cfg       Config
	costs     costs.Model
	emissions emissions.Model

	// extra objectives participate in the composite score in addition to
	// the canonical time/cost/emissions axes.
	extra []Objective
}

// NewScorer returns a Scorer using the given models.
func NewScorer(cfg Config, cm costs.Model, em emissions.Model) *Scorer {
	return &Scorer{cfg: cfg, costs: cm, emissions: em}
}

// AddObjective registers an additional composite objective. The canonical
// weights plus all extra weights must still sum to 1.0 at scoring time.
func (s *Scorer) AddObjective(o Objective) {
	s.extra = append(s.extra, o)
}

func (s *Scorer) objectives() []Objective {
	objs := canonicalObjectives(s.cfg.Weights)
	return append(objs, s.extra...)
}

func (s *Scorer) validateWeights() error {
	sum := 0.0
	for _, o := range s.objectives() {
		if o.Weight < 0 {
			return fmt.Errorf("%w: objective %s has negative weight", ErrInvalidWeightConfiguration, o.Name)
		}
		sum += o.Weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: objective weights sum to %.12f, must sum to 1.0", ErrInvalidWeightConfiguration, sum)
	}
	return nil
}

// speedFor returns the vehicle's speed tier, falling back to the configured
// fleet average.
func (s *Scorer) speedFor(v model.VehicleRecord) float64 {
	if v.SpeedKmh > 0 {
		return v.SpeedKmh
	}
	return s.cfg.AverageSpeedKmh
}

// ScoreAndRank computes raw metrics for every candidate, min-max normalizes
// each axis within the set, composes the weighted score and selects the four
// winners. Ties on any axis are broken by candidate generation order: the
// first-seen candidate wins. This is a deliberate policy, preserved even
// though metric computation runs in parallel, because results are written
// back by index and selection scans the ordered slice.
func (s *Scorer) ScoreAndRank(ctx context.Context, order model.OrderRequest, cands []Candidate) (*RankedResult, error) {
	if err := s.validateWeights(); err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, ErrEmptyCandidateSet
	}

	scored := make([]ScoredCandidate, len(cands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i := range cands {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			c := cands[i]
			c.TimeHours = c.Route.DistanceKm / s.speedFor(c.Vehicle) * c.Route.TrafficFactor * c.Route.WeatherFactor
			b, err := s.costs.Estimate(c.Route, c.Vehicle, order, c.TimeHours)
			if err != nil {
				return err
			}
			c.Cost = b
			e, err := s.emissions.Estimate(c.Route, c.Vehicle)
			if err != nil {
				return err
			}
			c.Emissions = e
			scored[i] = ScoredCandidate{Candidate: c}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.normalizeAndCompose(scored)

	res := &RankedResult{
		ID:                    uuid.NewString(),
		Order:                 order,
		Candidates:            scored,
		CombinationsEvaluated: len(scored),
	}
	res.Fastest = argmin(scored, func(c *ScoredCandidate) float64 { return c.TimeHours })
	res.Cheapest = argmin(scored, func(c *ScoredCandidate) float64 { return c.Cost.Total })
	res.Greenest = argmin(scored, func(c *ScoredCandidate) float64 { return c.Emissions.CO2Kg })
	res.Balanced = argmin(scored, func(c *ScoredCandidate) float64 { return c.Scores.Composite })
	return res, nil
}

// normalizeAndCompose min-max rescales every objective across the set and
// fills the per-candidate ScoreSet. A zero-variance axis maps to 0 for all
// candidates: no variance means no penalty.
func (s *Scorer) normalizeAndCompose(scored []ScoredCandidate) {
	raw := make([]float64, len(scored))
	for _, obj := range s.objectives() {
		for i := range scored {
			raw[i] = obj.Metric(&scored[i].Candidate)
		}
		lo, hi := floats.Min(raw), floats.Max(raw)
		span := hi - lo
		for i := range scored {
			var norm float64
			if span > 0 {
				norm = (raw[i] - lo) / span
			}
			switch obj.Name {
			case "time":
				scored[i].Scores.Time = norm
			case "cost":
				scored[i].Scores.Cost = norm
			case "emissions":
				scored[i].Scores.Emissions = norm
			}
			scored[i].Scores.Composite += obj.Weight * norm
		}
	}
}

// argmin returns the index of the minimum metric value. Strict less-than
// keeps the first-seen candidate on ties.
func argmin(scored []ScoredCandidate, metric func(*ScoredCandidate) float64) int {
	best := 0
	for i := 1; i < len(scored); i++ {
		if metric(&scored[i]) < metric(&scored[best]) {
			best = i
		}
	}
	return best
}
