package model

import "fmt"

// VehicleStatus describes the operating state of a fleet vehicle.
type VehicleStatus int

const (
	StatusAvailable VehicleStatus = iota
	StatusInTransit
	StatusUnavailable
	StatusMaintenance
)

// String returns the canonical name used in data files and metrics labels.
func (s VehicleStatus) String() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusInTransit:
		return "In_Transit"
	case StatusUnavailable:
		return "Unavailable"
	case StatusMaintenance:
		return "Maintenance"
	default:
		return "Unknown"
	}
}

// ParseVehicleStatus converts a data-file status string into a VehicleStatus.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch s {
	case "Available":
		return StatusAvailable, nil
	case "In_Transit":
		return StatusInTransit, nil
	case "Unavailable":
		return StatusUnavailable, nil
	case "Maintenance":
		return StatusMaintenance, nil
	default:
		return 0, fmt.Errorf("unknown vehicle status %q", s)
	}
}

// VehicleRecord is read-only reference data describing one fleet vehicle.
// Records are supplied by the external data layer for the lifetime of a
// single optimization call and never mutated by the engine.
type VehicleRecord struct {
	ID   string
	Type string
	// CapacityKg is the maximum shipment weight the vehicle can carry.
	CapacityKg float64
	// EfficiencyKmPerL is fuel efficiency in kilometres per litre.
	EfficiencyKmPerL float64
	// CO2KgPerKm is the emission factor in kg CO2 per kilometre.
	CO2KgPerKm float64
	Status     VehicleStatus
	// SpeedKmh optionally overrides the engine's average speed for this
	// vehicle class (e.g. bikes in city traffic). Zero means "use default".
	SpeedKmh float64
	// CostPerKm and CostPerHour override the configured per-type rate
	// tables when positive.
	CostPerKm   float64
	CostPerHour float64
}

// Validate checks the record invariants.
func (v VehicleRecord) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("%w: vehicle id is empty", ErrInvalidVehicleData)
	}
	if v.CapacityKg <= 0 {
		return fmt.Errorf("%w: vehicle %s capacity must be positive", ErrInvalidVehicleData, v.ID)
	}
	return nil
}

// CanCarry reports whether the vehicle has capacity for the given weight.
func (v VehicleRecord) CanCarry(weightKg float64) bool {
	return v.CapacityKg >= weightKg
}

// Dispatchable reports whether the vehicle may be assigned to a new order.
// Only Available vehicles are dispatchable; In_Transit vehicles are tracked
// but not offered as candidates.
func (v VehicleRecord) Dispatchable() bool {
	return v.Status == StatusAvailable
}
