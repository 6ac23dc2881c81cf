// Package emissions estimates the environmental impact of route-vehicle
// pairings. CO2 mass is a linear-in-distance proxy: it deliberately ignores
// load weight and terrain, which is a documented limitation of the model,
// not a defect.
package emissions

import (
	"fmt"

	"github.com/priyamshah/greenroute/core/model"
)

// CarCO2KgPerKm is the average passenger car emission factor used to express
// emission deltas in relatable terms.
const CarCO2KgPerKm = 0.15

// Result is the sustainability estimate for one candidate.
type Result struct {
	CO2Kg      float64
	OffsetCost float64
	Rating     Rating
}

// Model computes emission estimates from the configured constants.
type Model struct {
	cfg Config
}

// NewModel returns a Model backed by the given configuration.
func NewModel(cfg Config) Model {
	return Model{cfg: cfg}
}

// Estimate computes CO2 mass, carbon offset cost and the efficiency rating
// for the pairing. A zero or negative emission factor fails loudly: treating
// it as zero would wrongly present the candidate as emission-free.
func (m Model) Estimate(route model.RouteRecord, vehicle model.VehicleRecord) (Result, error) {
	if vehicle.CO2KgPerKm <= 0 {
		return Result{}, fmt.Errorf("%w: vehicle %s CO2 factor must be positive", model.ErrInvalidVehicleData, vehicle.ID)
	}

	co2 := route.DistanceKm * vehicle.CO2KgPerKm
	return Result{
		CO2Kg:      co2,
		OffsetCost: co2 * m.cfg.OffsetPricePerKg,
		Rating:     m.rate(vehicle.CO2KgPerKm),
	}, nil
}

func (m Model) rate(co2PerKm float64) Rating {
	for _, th := range m.cfg.RatingThresholds {
		if co2PerKm <= th.MaxCO2KgPerKm {
			return th.Rating
		}
	}
	return RatingInefficient
}

// Comparison quantifies the emission difference between two results.
type Comparison struct {
	DifferenceKg      float64
	PercentDifference float64
	GreenerIsFirst    bool
	// CarEquivalentKm expresses the difference as kilometres of average
	// passenger car travel.
	CarEquivalentKm float64
}

// Compare returns the emission delta between two results (a minus b).
func Compare(a, b Result) Comparison {
	cmp := Comparison{
		DifferenceKg:    a.CO2Kg - b.CO2Kg,
		GreenerIsFirst:  a.CO2Kg < b.CO2Kg,
		CarEquivalentKm: (a.CO2Kg - b.CO2Kg) / CarCO2KgPerKm,
	}
	if b.CO2Kg > 0 {
		cmp.PercentDifference = (a.CO2Kg - b.CO2Kg) / b.CO2Kg * 100
	}
	return cmp
}
