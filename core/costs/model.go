package costs

import (
	"fmt"
	"math"

	"github.com/priyamshah/greenroute/core/model"
)

// InvalidCostComponentError reports a cost component that computed to a
// negative value. This is a defect in the input data or configuration and is
// surfaced loudly rather than clamped.
type InvalidCostComponentError struct {
	Component string
	Value     float64
}

func (e *InvalidCostComponentError) Error() string {
	return fmt.Sprintf("invalid cost component %s: %.2f is negative", e.Component, e.Value)
}

// Breakdown is the eight-component delivery cost estimate. All values are in
// the configured currency (INR by default). The components always sum to
// Total within floating tolerance.
type Breakdown struct {
	Fuel        float64
	Labor       float64
	Maintenance float64
	Tolls       float64
	Insurance   float64
	Packaging   float64
	PlatformFee float64
	Overhead    float64
	Subtotal    float64
	Total       float64
}

// ComponentSum returns the sum of the eight components. Exposed so callers
// can assert the breakdown round-trip (sum == Total).
func (b Breakdown) ComponentSum() float64 {
	return b.Fuel + b.Labor + b.Maintenance + b.Tolls +
		b.Insurance + b.Packaging + b.PlatformFee + b.Overhead
}

// Model computes interpretable cost breakdowns for route-vehicle pairings.
// Rule-based and auditable: every component is reconstructable from the
// configuration by hand.
type Model struct {
	cfg Config
}

// NewModel returns a Model backed by the given rates.
func NewModel(cfg Config) Model {
	return Model{cfg: cfg}
}

func (m Model) laborRate(v model.VehicleRecord) float64 {
	if v.CostPerHour > 0 {
		return v.CostPerHour
	}
	if r, ok := m.cfg.LaborRatePerHour[v.Type]; ok {
		return r
	}
	return m.cfg.DefaultLaborRate
}

func (m Model) maintenanceRate(v model.VehicleRecord) float64 {
	if v.CostPerKm > 0 {
		return v.CostPerKm
	}
	if r, ok := m.cfg.MaintenancePerKm[v.Type]; ok {
		return r
	}
	return m.cfg.DefaultMaintenanceRate
}

// Estimate computes the full cost breakdown for one candidate pairing.
// timeHours is the estimated delivery time including traffic and weather
// effects, so labor cost already reflects delay conditions.
func (m Model) Estimate(route model.RouteRecord, vehicle model.VehicleRecord, order model.OrderRequest, timeHours float64) (Breakdown, error) {
	if vehicle.EfficiencyKmPerL <= 0 {
		return Breakdown{}, fmt.Errorf("%w: vehicle %s fuel efficiency must be positive", model.ErrInvalidVehicleData, vehicle.ID)
	}

	var b Breakdown
	b.Fuel = route.DistanceKm / vehicle.EfficiencyKmPerL * m.cfg.FuelPricePerLiter
	b.Labor = timeHours * m.laborRate(vehicle)
	b.Maintenance = route.DistanceKm * m.maintenanceRate(vehicle)
	b.Tolls = route.TollCost

	if order.WeightKg < m.cfg.InsuranceWeightThresholdKg {
		b.Insurance = m.cfg.InsuranceBase
	} else {
		b.Insurance = order.WeightKg * m.cfg.InsuranceRatePerKg
	}

	b.Packaging = m.cfg.PackagingBase
	if order.Priority == model.PriorityExpress {
		b.Packaging *= m.cfg.ExpressPackagingFactor
	}

	b.Subtotal = b.Fuel + b.Labor + b.Maintenance + b.Tolls + b.Insurance + b.Packaging
	b.PlatformFee = b.Subtotal * m.cfg.PlatformFeePct / 100
	b.Overhead = b.Subtotal * m.cfg.OverheadPct / 100
	b.Total = b.Subtotal + b.PlatformFee + b.Overhead

	if err := b.validate(); err != nil {
		return Breakdown{}, err
	}
	return b, nil
}

func (b Breakdown) validate() error {
	components := []struct {
		name  string
		value float64
	}{
		{"fuel", b.Fuel},
		{"labor", b.Labor},
		{"maintenance", b.Maintenance},
		{"tolls", b.Tolls},
		{"insurance", b.Insurance},
		{"packaging", b.Packaging},
		{"platform_fee", b.PlatformFee},
		{"overhead", b.Overhead},
	}
	for _, c := range components {
		if c.value < 0 || math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &InvalidCostComponentError{Component: c.name, Value: c.value}
		}
	}
	return nil
}

// Comparison quantifies the difference between two cost breakdowns and names
// the component driving it.
type Comparison struct {
	Difference        float64
	PercentDifference float64
	CheaperIsFirst    bool
	BiggestDriver     string
	DriverDifference  float64
}

// Compare returns the cost delta between two breakdowns (a minus b) and the
// distance-dependent component contributing most to it.
func Compare(a, b Breakdown) Comparison {
	cmp := Comparison{
		Difference:     a.Total - b.Total,
		CheaperIsFirst: a.Total < b.Total,
	}
	if b.Total > 0 {
		cmp.PercentDifference = (a.Total - b.Total) / b.Total * 100
	}

	drivers := []struct {
		name string
		diff float64
	}{
		{"fuel", a.Fuel - b.Fuel},
		{"labor", a.Labor - b.Labor},
		{"maintenance", a.Maintenance - b.Maintenance},
		{"tolls", a.Tolls - b.Tolls},
	}
	for _, d := range drivers {
		if math.Abs(d.diff) > math.Abs(cmp.DriverDifference) {
			cmp.BiggestDriver = d.name
			cmp.DriverDifference = d.diff
		}
	}
	return cmp
}
