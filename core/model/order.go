package model

import (
	"fmt"
	"strings"
)

// Priority is the delivery priority class of an order.
type Priority int

const (
	PriorityStandard Priority = iota
	PriorityExpress
	PriorityEconomy
)

func (p Priority) String() string {
	switch p {
	case PriorityExpress:
		return "Express"
	case PriorityStandard:
		return "Standard"
	case PriorityEconomy:
		return "Economy"
	default:
		return "Unknown"
	}
}

// ParsePriority converts a priority string into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "Express":
		return PriorityExpress, nil
	case "Standard":
		return PriorityStandard, nil
	case "Economy":
		return PriorityEconomy, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

// OrderRequest describes one shipment to optimize.
type OrderRequest struct {
	Origin      string
	Destination string
	WeightKg    float64
	Priority    Priority
}

// Validate checks the request invariants.
func (o OrderRequest) Validate() error {
	if o.Origin == "" || o.Destination == "" {
		return fmt.Errorf("order: origin and destination are required")
	}
	if strings.EqualFold(o.Origin, o.Destination) {
		return fmt.Errorf("order: origin and destination must differ")
	}
	if o.WeightKg <= 0 {
		return fmt.Errorf("order: weight must be positive, got %.2f", o.WeightKg)
	}
	return nil
}

// Location is a named point in the delivery network. Coordinates enable the
// straight-line distance fallback when no direct route record exists.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}
