package model

import (
	"fmt"
	"strings"
)

// RouteRecord is read-only reference data describing one origin-destination
// lane. TrafficFactor and WeatherFactor are time multipliers (>= 1) derived
// upstream by the preprocessing layer from raw delay observations.
type RouteRecord struct {
	Origin      string
	Destination string
	DistanceKm  float64
	// TrafficFactor scales travel time for congestion. 1.0 means free flow.
	TrafficFactor float64
	// WeatherFactor scales travel time for weather conditions.
	WeatherFactor float64
	TollCost      float64
	// FuelEstimateL is the historical fuel consumption for the lane in
	// litres. Informational only; cost estimation recomputes fuel from the
	// vehicle's efficiency.
	FuelEstimateL float64
	// Estimated marks routes synthesized from a straight-line distance
	// estimate because no direct lane record existed. Estimated routes are
	// disclosed in trade-off statements and exports.
	Estimated bool
}

// Validate checks the record invariants.
func (r RouteRecord) Validate() error {
	if r.DistanceKm <= 0 {
		return fmt.Errorf("route %s-%s: distance must be positive", r.Origin, r.Destination)
	}
	if strings.EqualFold(r.Origin, r.Destination) {
		return fmt.Errorf("route %s-%s: origin and destination must differ", r.Origin, r.Destination)
	}
	return nil
}

// Matches reports whether the route serves the given lane. Location names
// are compared case-insensitively, matching the data layer's behaviour.
func (r RouteRecord) Matches(origin, destination string) bool {
	return strings.EqualFold(r.Origin, origin) && strings.EqualFold(r.Destination, destination)
}
