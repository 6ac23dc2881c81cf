package optimizer

import (
	"errors"
	"fmt"
)

// ErrNoRouteData indicates that no direct route exists for the requested
// lane and no coordinates are available to estimate a distance.
var ErrNoRouteData = errors.New("no route data for lane")

// ErrEmptyCandidateSet indicates the scorer was given zero candidates.
var ErrEmptyCandidateSet = errors.New("empty candidate set")

// ErrInvalidWeightConfiguration indicates objective weights that do not sum
// to 1.0. Weights are never silently renormalized.
var ErrInvalidWeightConfiguration = errors.New("invalid weight configuration")

// Constraint names reported by NoFeasibleVehicleError.
const (
	ConstraintCapacity     = "capacity"
	ConstraintAvailability = "availability"
)

// NoFeasibleVehicleError reports that the vehicle filter eliminated every
// vehicle, naming the constraint that could not be met. Surfaced instead of
// an empty ranked result so bad input data never presents as "no good route
// exists".
type NoFeasibleVehicleError struct {
	Constraint string
	WeightKg   float64
}

func (e *NoFeasibleVehicleError) Error() string {
	switch e.Constraint {
	case ConstraintCapacity:
		return fmt.Sprintf("no feasible vehicle: none can carry %.1f kg", e.WeightKg)
	case ConstraintAvailability:
		return fmt.Sprintf("no feasible vehicle: none with capacity for %.1f kg is available", e.WeightKg)
	default:
		return "no feasible vehicle"
	}
}
