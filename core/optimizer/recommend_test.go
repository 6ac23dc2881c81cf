package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyamshah/greenroute/core/costs"
	"github.com/priyamshah/greenroute/core/emissions"
	"github.com/priyamshah/greenroute/core/model"
)

func scoredCandidate(id string, timeHours, total, co2 float64) ScoredCandidate {
	return ScoredCandidate{Candidate: Candidate{
		Vehicle:   model.VehicleRecord{ID: id},
		TimeHours: timeHours,
		Cost:      costs.Breakdown{Total: total},
		Emissions: emissions.Result{CO2Kg: co2},
	}}
}

func TestRecommendExpressPrefersEquallyFastCheaper(t *testing.T) {
	r := &RankedResult{
		Order: model.OrderRequest{Priority: model.PriorityExpress},
		Candidates: []ScoredCandidate{
			scoredCandidate("fast", 10.0, 5000, 100),
			scoredCandidate("cheap", 10.2, 3000, 100), // within 5% of fastest
		},
		Fastest: 0, Cheapest: 1, Greenest: 0, Balanced: 1,
	}
	adv := Recommend(r)
	assert.Equal(t, "cheapest", adv.Primary.Option)
	assert.Contains(t, adv.Primary.Rationale, "same time")
}

func TestRecommendExpressFastestWhenClearlyFaster(t *testing.T) {
	r := &RankedResult{
		Order: model.OrderRequest{Priority: model.PriorityExpress},
		Candidates: []ScoredCandidate{
			scoredCandidate("fast", 10.0, 5000, 300),
			scoredCandidate("cheap", 20.0, 3000, 100),
		},
		Fastest: 0, Cheapest: 1, Greenest: 1, Balanced: 1,
	}
	adv := Recommend(r)
	assert.Equal(t, "fastest", adv.Primary.Option)
	// Fastest leaves 200 kg CO2 on the table: alternative fires.
	require.NotNil(t, adv.Alternative)
	assert.Equal(t, "greenest", adv.Alternative.Option)
}

func TestRecommendEconomyPrefersEquallyCheapGreener(t *testing.T) {
	r := &RankedResult{
		Order: model.OrderRequest{Priority: model.PriorityEconomy},
		Candidates: []ScoredCandidate{
			scoredCandidate("cheap", 12.0, 3000, 200),
			scoredCandidate("green", 13.0, 3050, 90), // within 5% of cheapest
		},
		Fastest: 0, Cheapest: 0, Greenest: 1, Balanced: 0,
	}
	adv := Recommend(r)
	assert.Equal(t, "greenest", adv.Primary.Option)
}

func TestRecommendStandardKeepsBalanced(t *testing.T) {
	a := scoredCandidate("fast", 8, 9000, 199.5)
	a.Scores.Composite = 0.6
	b := scoredCandidate("bal", 12, 5000, 200)
	b.Scores.Composite = 0.2
	c := scoredCandidate("cheap", 20, 3000, 350)
	c.Scores.Composite = 0.5

	r := &RankedResult{
		Order:      model.OrderRequest{Priority: model.PriorityStandard},
		Candidates: []ScoredCandidate{a, b, c},
		Fastest:    0, Cheapest: 2, Greenest: 0, Balanced: 1,
	}
	adv := Recommend(r)
	assert.Equal(t, "balanced", adv.Primary.Option)
	require.NotNil(t, adv.Alternative)
	assert.Equal(t, "cheapest", adv.Alternative.Option)
}

func TestRecommendNoAlternativeWhenSavingsImmaterial(t *testing.T) {
	a := scoredCandidate("bal", 10, 3000, 100)
	a.Scores.Composite = 0.1
	b := scoredCandidate("other", 10.3, 3030, 100.5)
	b.Scores.Composite = 0.9

	r := &RankedResult{
		Order:      model.OrderRequest{Priority: model.PriorityStandard},
		Candidates: []ScoredCandidate{a, b},
		Fastest:    0, Cheapest: 0, Greenest: 0, Balanced: 0,
	}
	adv := Recommend(r)
	assert.Nil(t, adv.Alternative)
}
