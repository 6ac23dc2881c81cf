package optimizer

import (
	"fmt"
	"math"

	"github.com/priyamshah/greenroute/core/model"
)

// Tolerances and materiality floors for recommendations.
const (
	// approxEqualTolerance treats metrics within 5% as interchangeable.
	approxEqualTolerance = 0.05
	// balancedCollapseTolerance detects a balanced choice that is in
	// practice one of the specialized winners.
	balancedCollapseTolerance = 0.03

	minCO2SavingsKg  = 1.0
	minCostSavings   = 50.0
	minTimeSavingsHr = 0.5
)

// Recommendation names one of the four selections and explains why.
type Recommendation struct {
	Option    string
	Rationale string
}

// Advice is the primary recommendation plus an optional alternative worth
// mentioning (material CO2, cost or time savings the primary leaves on the
// table).
type Advice struct {
	Primary     Recommendation
	Alternative *Recommendation
}

// Recommend derives a priority-aware recommendation from a ranked result.
// Express minimizes time but prefers a cheaper or greener option that is
// just as fast; Economy minimizes cost with the symmetric preference;
// Standard keeps the balanced choice unless it collapses onto a specialized
// winner.
func Recommend(r *RankedResult) Advice {
	var advice Advice
	switch r.Order.Priority {
	case model.PriorityExpress:
		advice.Primary = recommendExpress(r)
	case model.PriorityEconomy:
		advice.Primary = recommendEconomy(r)
	default:
		advice.Primary = recommendStandard(r)
	}
	advice.Alternative = recommendAlternative(r, advice.Primary.Option)
	return advice
}

func recommendExpress(r *RankedResult) Recommendation {
	fastest, cheapest, greenest := r.FastestCandidate(), r.CheapestCandidate(), r.GreenestCandidate()

	if approxEqual(fastest.TimeHours, cheapest.TimeHours, approxEqualTolerance) {
		return Recommendation{
			Option: "cheapest",
			Rationale: fmt.Sprintf("cheapest option delivers in the same time (%.1f h) as fastest but saves ₹%.0f",
				cheapest.TimeHours, fastest.Cost.Total-cheapest.Cost.Total),
		}
	}
	if approxEqual(fastest.TimeHours, greenest.TimeHours, approxEqualTolerance) {
		return Recommendation{
			Option: "greenest",
			Rationale: fmt.Sprintf("greenest option delivers in the same time (%.1f h) as fastest but saves %.1f kg CO₂",
				greenest.TimeHours, fastest.Emissions.CO2Kg-greenest.Emissions.CO2Kg),
		}
	}
	return Recommendation{
		Option:    "fastest",
		Rationale: fmt.Sprintf("fastest delivery (%.1f h) for Express priority", fastest.TimeHours),
	}
}

func recommendEconomy(r *RankedResult) Recommendation {
	fastest, cheapest, greenest := r.FastestCandidate(), r.CheapestCandidate(), r.GreenestCandidate()

	if approxEqual(cheapest.Cost.Total, greenest.Cost.Total, approxEqualTolerance) {
		return Recommendation{
			Option: "greenest",
			Rationale: fmt.Sprintf("greenest option costs the same (₹%.0f) as cheapest but saves %.1f kg CO₂",
				greenest.Cost.Total, cheapest.Emissions.CO2Kg-greenest.Emissions.CO2Kg),
		}
	}
	if approxEqual(cheapest.Cost.Total, fastest.Cost.Total, approxEqualTolerance) {
		return Recommendation{
			Option: "fastest",
			Rationale: fmt.Sprintf("fastest option costs the same (₹%.0f) as cheapest but saves %.1f hours",
				fastest.Cost.Total, cheapest.TimeHours-fastest.TimeHours),
		}
	}
	return Recommendation{
		Option:    "cheapest",
		Rationale: fmt.Sprintf("lowest cost (₹%.0f) for Economy priority", cheapest.Cost.Total),
	}
}

func recommendStandard(r *RankedResult) Recommendation {
	balanced, cheapest, greenest := r.BalancedCandidate(), r.CheapestCandidate(), r.GreenestCandidate()

	if approxEqual(balanced.Scores.Composite, cheapest.Scores.Composite, balancedCollapseTolerance) {
		return Recommendation{
			Option: "cheapest",
			Rationale: fmt.Sprintf("cheapest option (₹%.0f) provides the best overall balance for Standard priority",
				cheapest.Cost.Total),
		}
	}
	if approxEqual(balanced.Scores.Composite, greenest.Scores.Composite, balancedCollapseTolerance) {
		return Recommendation{
			Option: "greenest",
			Rationale: fmt.Sprintf("greenest option (%.1f kg CO₂) provides the best overall balance for Standard priority",
				greenest.Emissions.CO2Kg),
		}
	}
	return Recommendation{
		Option: "balanced",
		Rationale: fmt.Sprintf("balanced option trades off time (%.1f h), cost (₹%.0f) and emissions (%.1f kg CO₂)",
			balanced.TimeHours, balanced.Cost.Total, balanced.Emissions.CO2Kg),
	}
}

// recommendAlternative suggests the best selection the primary pick leaves
// out, when the savings are material.
func recommendAlternative(r *RankedResult, primary string) *Recommendation {
	chosen := r.candidateFor(primary)
	if primary != "greenest" {
		if saved := chosen.Emissions.CO2Kg - r.GreenestCandidate().Emissions.CO2Kg; saved > minCO2SavingsKg {
			return &Recommendation{
				Option:    "greenest",
				Rationale: fmt.Sprintf("consider the greenest option to save %.1f kg CO₂", saved),
			}
		}
	}
	if primary != "cheapest" {
		if saved := chosen.Cost.Total - r.CheapestCandidate().Cost.Total; saved > minCostSavings {
			return &Recommendation{
				Option:    "cheapest",
				Rationale: fmt.Sprintf("consider the cheapest option to save ₹%.0f", saved),
			}
		}
	}
	if primary != "fastest" {
		if saved := chosen.TimeHours - r.FastestCandidate().TimeHours; saved > minTimeSavingsHr {
			return &Recommendation{
				Option:    "fastest",
				Rationale: fmt.Sprintf("consider the fastest option to save %.1f hours", saved),
			}
		}
	}
	return nil
}

func (r *RankedResult) candidateFor(option string) *ScoredCandidate {
	switch option {
	case "fastest":
		return r.FastestCandidate()
	case "cheapest":
		return r.CheapestCandidate()
	case "greenest":
		return r.GreenestCandidate()
	default:
		return r.BalancedCandidate()
	}
}

func approxEqual(a, b, tolerance float64) bool {
	if a == 0 && b == 0 {
		return true
	}
	if a == 0 || b == 0 {
		return false
	}
	return math.Abs(a-b)/math.Max(a, b) <= tolerance
}
