package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyamshah/greenroute/core/model"
)

func testModel() Model {
	var cfg Config
	cfg.SetDefaults()
	return NewModel(cfg)
}

func TestEstimateCO2AndOffset(t *testing.T) {
	m := testModel()
	route := model.RouteRecord{Origin: "Mumbai", Destination: "Delhi", DistanceKm: 500}
	vehicle := model.VehicleRecord{ID: "TRK-1", CapacityKg: 5000, CO2KgPerKm: 0.45}

	res, err := m.Estimate(route, vehicle)
	require.NoError(t, err)

	assert.InDelta(t, 225.0, res.CO2Kg, 1e-9)
	assert.InDelta(t, 225.0*1.245, res.OffsetCost, 1e-9)
	assert.Equal(t, RatingInefficient, res.Rating)
}

func TestEstimateRejectsZeroFactor(t *testing.T) {
	m := testModel()
	route := model.RouteRecord{Origin: "A", Destination: "B", DistanceKm: 100}

	_, err := m.Estimate(route, model.VehicleRecord{ID: "V-0", CapacityKg: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidVehicleData)
}

func TestRatingBucketEdges(t *testing.T) {
	m := testModel()
	cases := []struct {
		factor float64
		want   Rating
	}{
		{0.05, RatingEfficient},
		{0.2, RatingEfficient}, // boundary is inclusive
		{0.21, RatingAverage},
		{0.4, RatingAverage},
		{0.41, RatingInefficient},
	}
	for _, c := range cases {
		if got := m.rate(c.factor); got != c.want {
			t.Fatalf("factor %.2f: got %s want %s", c.factor, got, c.want)
		}
	}
}

func TestCompareCarEquivalent(t *testing.T) {
	a := Result{CO2Kg: 225}
	b := Result{CO2Kg: 150}

	cmp := Compare(a, b)
	assert.InDelta(t, 75.0, cmp.DifferenceKg, 1e-9)
	assert.InDelta(t, 500.0, cmp.CarEquivalentKm, 1e-9)
	assert.InDelta(t, 50.0, cmp.PercentDifference, 1e-9)
	assert.False(t, cmp.GreenerIsFirst)
}

func TestConfigValidate(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	assert.NoError(t, cfg.Validate())

	bad := Config{RatingThresholds: []RatingThreshold{
		{MaxCO2KgPerKm: 0.4, Rating: RatingEfficient},
		{MaxCO2KgPerKm: 0.2, Rating: RatingAverage},
	}}
	assert.Error(t, bad.Validate())
}
