package optimizer

import (
	"strings"

	"github.com/priyamshah/greenroute/core/geo"
	"github.com/priyamshah/greenroute/core/model"
)

// Generator builds the feasible candidate set for an order. It only reads
// the reference tables and returns fresh Candidate values; derived metrics
// stay unset until scoring.
type Generator struct {
	cfg Config
}

// NewGenerator returns a Generator using the given engine constants for the
// estimated-route fallback.
func NewGenerator(cfg Config) Generator {
	return Generator{cfg: cfg}
}

// Generate returns every feasible (route, vehicle) pairing for the order.
// Candidate order is stable: route table order crossed with vehicle table
// order. Downstream tie-breaking depends on this.
//
// When the order's lane has no direct route record, a route is synthesized
// from the straight-line distance between the two locations with the
// configured conservative traffic/weather factors and flagged Estimated.
func (g Generator) Generate(
	order model.OrderRequest,
	routes []model.RouteRecord,
	vehicles []model.VehicleRecord,
	locations map[string]model.Location,
) ([]Candidate, error) {
	feasible, err := g.filterVehicles(order, vehicles)
	if err != nil {
		return nil, err
	}

	var lanes []model.RouteRecord
	for _, r := range routes {
		if r.Matches(order.Origin, order.Destination) {
			lanes = append(lanes, r)
		}
	}
	if len(lanes) == 0 {
		est, err := g.synthesizeRoute(order, locations)
		if err != nil {
			return nil, err
		}
		lanes = append(lanes, est)
	}

	cands := make([]Candidate, 0, len(lanes)*len(feasible))
	for _, r := range lanes {
		for _, v := range feasible {
			cands = append(cands, Candidate{Route: r, Vehicle: v})
		}
	}
	return cands, nil
}

// filterVehicles applies the hard constraints before any cost or emissions
// work happens. The two failure modes are reported distinctly so the caller
// can tell "fleet too small" from "fleet busy".
func (g Generator) filterVehicles(order model.OrderRequest, vehicles []model.VehicleRecord) ([]model.VehicleRecord, error) {
	var capable int
	var feasible []model.VehicleRecord
	for _, v := range vehicles {
		if !v.CanCarry(order.WeightKg) {
			continue
		}
		capable++
		if v.Dispatchable() {
			feasible = append(feasible, v)
		}
	}
	if capable == 0 {
		return nil, &NoFeasibleVehicleError{Constraint: ConstraintCapacity, WeightKg: order.WeightKg}
	}
	if len(feasible) == 0 {
		return nil, &NoFeasibleVehicleError{Constraint: ConstraintAvailability, WeightKg: order.WeightKg}
	}
	return feasible, nil
}

func (g Generator) synthesizeRoute(order model.OrderRequest, locations map[string]model.Location) (model.RouteRecord, error) {
	from, okFrom := lookupLocation(locations, order.Origin)
	to, okTo := lookupLocation(locations, order.Destination)
	if !okFrom || !okTo {
		return model.RouteRecord{}, ErrNoRouteData
	}

	dist := geo.Haversine(geo.Point{Lat: from.Lat, Lon: from.Lon}, geo.Point{Lat: to.Lat, Lon: to.Lon})
	return model.RouteRecord{
		Origin:        order.Origin,
		Destination:   order.Destination,
		DistanceKm:    dist,
		TrafficFactor: g.cfg.EstimatedTrafficFactor,
		WeatherFactor: g.cfg.EstimatedWeatherFactor,
		TollCost:      dist * g.cfg.EstimatedTollPerKm,
		Estimated:     true,
	}, nil
}

func lookupLocation(locations map[string]model.Location, name string) (model.Location, bool) {
	if loc, ok := locations[name]; ok {
		return loc, true
	}
	for key, loc := range locations {
		if strings.EqualFold(key, name) {
			return loc, true
		}
	}
	return model.Location{}, false
}
