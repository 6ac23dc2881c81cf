package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyamshah/greenroute/core/costs"
	"github.com/priyamshah/greenroute/core/emissions"
	"github.com/priyamshah/greenroute/core/model"
)

// hand-built result: balanced is index 0, fastest is index 1.
func narratorFixture(estimated bool) *RankedResult {
	balanced := ScoredCandidate{Candidate: Candidate{
		Route:     model.RouteRecord{Origin: "Mumbai", Destination: "Delhi", DistanceKm: 1400},
		Vehicle:   model.VehicleRecord{ID: "A"},
		TimeHours: 23.3,
		Cost:      costs.Breakdown{Total: 30000},
		Emissions: emissions.Result{CO2Kg: 210},
	}}
	fast := ScoredCandidate{Candidate: Candidate{
		Route:     model.RouteRecord{Origin: "Mumbai", Destination: "Delhi", DistanceKm: 1400, Estimated: estimated},
		Vehicle:   model.VehicleRecord{ID: "B"},
		TimeHours: 17.5,
		Cost:      costs.Breakdown{Total: 34500},
		Emissions: emissions.Result{CO2Kg: 490},
	}}
	return &RankedResult{
		Candidates: []ScoredCandidate{balanced, fast},
		Fastest:    1,
		Cheapest:   0,
		Greenest:   0,
		Balanced:   0,
	}
}

func TestNarrateEmitsOnlyDifferingAxes(t *testing.T) {
	sts := Narrate(narratorFixture(false))
	// Cheapest and greenest coincide with balanced: only fastest speaks.
	require.Len(t, sts, 1)

	st := sts[0]
	assert.Equal(t, "fastest", st.Axis)
	assert.InDelta(t, -5.8, st.DeltaHours, 1e-9)
	assert.InDelta(t, 4500.0, st.DeltaCost, 1e-9)
	assert.InDelta(t, 280.0, st.DeltaCO2Kg, 1e-9)
	assert.Contains(t, st.Message, "saves 5.8 h")
	assert.Contains(t, st.Message, "costs ₹4500 more")
	assert.Contains(t, st.Message, "emits 280.0 kg more CO₂")
	assert.False(t, strings.Contains(st.Message, "distance estimated"))
}

func TestNarrateAllWinnersCoincide(t *testing.T) {
	r := narratorFixture(false)
	r.Fastest = 0
	assert.Empty(t, Narrate(r))
}

func TestNarrateDisclosesEstimatedRoutes(t *testing.T) {
	sts := Narrate(narratorFixture(true))
	require.Len(t, sts, 1)
	assert.True(t, sts[0].Estimated)
	assert.Contains(t, sts[0].Message, "(distance estimated)")
}
