package optimizer

import "github.com/priyamshah/greenroute/core/model"

// ScoreSet holds the normalized per-axis scores in [0,1] (0 = best within
// the candidate set) and the weighted composite. Scores are comparable only
// within one optimization call, never across calls.
type ScoreSet struct {
	Time      float64
	Cost      float64
	Emissions float64
	Composite float64
}

// ScoredCandidate pairs a fully derived candidate with its normalized
// scores.
type ScoredCandidate struct {
	Candidate
	Scores ScoreSet
}

// RankedResult is the full outcome of one optimization call: every scored
// candidate (for complete table rendering), the four selections as indexes
// into Candidates, the trade-off statements and the priority-aware
// recommendation. Plain structured data, no rendering logic.
type RankedResult struct {
	ID    string
	Order model.OrderRequest

	Candidates []ScoredCandidate

	// Indexes into Candidates. Any of the four may coincide.
	Fastest  int
	Cheapest int
	Greenest int
	Balanced int

	Statements     []TradeoffStatement
	Recommendation Advice

	CombinationsEvaluated int
}

// FastestCandidate returns the candidate with the minimum raw time.
func (r *RankedResult) FastestCandidate() *ScoredCandidate { return &r.Candidates[r.Fastest] }

// CheapestCandidate returns the candidate with the minimum raw total cost.
func (r *RankedResult) CheapestCandidate() *ScoredCandidate { return &r.Candidates[r.Cheapest] }

// GreenestCandidate returns the candidate with the minimum raw CO2 mass.
func (r *RankedResult) GreenestCandidate() *ScoredCandidate { return &r.Candidates[r.Greenest] }

// BalancedCandidate returns the candidate with the minimum composite score.
func (r *RankedResult) BalancedCandidate() *ScoredCandidate { return &r.Candidates[r.Balanced] }
