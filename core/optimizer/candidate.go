package optimizer

import (
	"github.com/priyamshah/greenroute/core/costs"
	"github.com/priyamshah/greenroute/core/emissions"
	"github.com/priyamshah/greenroute/core/model"
)

// Candidate is one feasible (route, vehicle) pairing for a single order.
// The generator creates candidates with only the pairing set; the scorer
// populates each derived field exactly once. Candidates are never mutated
// after scoring.
type Candidate struct {
	Route   model.RouteRecord
	Vehicle model.VehicleRecord

	// Derived fields, set once during scoring.
	TimeHours float64
	Cost      costs.Breakdown
	Emissions emissions.Result
}

// Estimated reports whether the candidate rides a synthesized route.
func (c Candidate) Estimated() bool {
	return c.Route.Estimated
}

// Objective is one axis of the composite score: a named raw-metric function
// with its weight. Modeling objectives as data means adding an axis is a
// table addition, not an edit to the scorer.
type Objective struct {
	Name   string
	Weight float64
	Metric func(c *Candidate) float64
}

// canonicalObjectives builds the default time/cost/emissions objective table
// from the configured weights.
func canonicalObjectives(w Weights) []Objective {
	return []Objective{
		{Name: "time", Weight: w.Time, Metric: func(c *Candidate) float64 { return c.TimeHours }},
		{Name: "cost", Weight: w.Cost, Metric: func(c *Candidate) float64 { return c.Cost.Total }},
		{Name: "emissions", Weight: w.Emissions, Metric: func(c *Candidate) float64 { return c.Emissions.CO2Kg }},
	}
}
