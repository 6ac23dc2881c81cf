package costs

import "fmt"

// Config holds every cost rate used by the model. Values are externally
// supplied constants; nothing in the model logic carries a literal rate.
// Defaults reflect Indian road logistics industry averages (INR).
type Config struct {
	FuelPricePerLiter float64 `json:"fuel_price_per_liter"`

	// LaborRatePerHour and MaintenancePerKm map vehicle type to rate.
	// Unknown types fall back to the default rates.
	LaborRatePerHour       map[string]float64 `json:"labor_rate_per_hour"`
	DefaultLaborRate       float64            `json:"default_labor_rate"`
	MaintenancePerKm       map[string]float64 `json:"maintenance_per_km"`
	DefaultMaintenanceRate float64            `json:"default_maintenance_rate"`

	// Insurance is flat below the weight threshold, per-kg above it.
	InsuranceBase              float64 `json:"insurance_base"`
	InsuranceWeightThresholdKg float64 `json:"insurance_weight_threshold_kg"`
	InsuranceRatePerKg         float64 `json:"insurance_rate_per_kg"`

	PackagingBase          float64 `json:"packaging_base"`
	ExpressPackagingFactor float64 `json:"express_packaging_factor"`

	// PlatformFeePct and OverheadPct apply to the six-component subtotal.
	PlatformFeePct float64 `json:"platform_fee_pct"`
	OverheadPct    float64 `json:"overhead_pct"`
}

// SetDefaults applies industry-average rates for unset fields.
func (c *Config) SetDefaults() {
	if c.FuelPricePerLiter == 0 {
		c.FuelPricePerLiter = 102.0
	}
	if c.LaborRatePerHour == nil {
		c.LaborRatePerHour = map[string]float64{
			"Express_Bike": 150.0,
			"Small_Van":    200.0,
			"Medium_Truck": 250.0,
			"Large_Truck":  300.0,
			"Refrigerated": 350.0,
		}
	}
	if c.DefaultLaborRate == 0 {
		c.DefaultLaborRate = 250.0
	}
	if c.MaintenancePerKm == nil {
		c.MaintenancePerKm = map[string]float64{
			"Express_Bike": 2.0,
			"Small_Van":    3.5,
			"Medium_Truck": 5.0,
			"Large_Truck":  7.0,
			"Refrigerated": 8.0,
		}
	}
	if c.DefaultMaintenanceRate == 0 {
		c.DefaultMaintenanceRate = 5.0
	}
	if c.InsuranceBase == 0 {
		c.InsuranceBase = 50.0
	}
	if c.InsuranceWeightThresholdKg == 0 {
		c.InsuranceWeightThresholdKg = 100.0
	}
	if c.InsuranceRatePerKg == 0 {
		c.InsuranceRatePerKg = 0.5
	}
	if c.PackagingBase == 0 {
		c.PackagingBase = 30.0
	}
	if c.ExpressPackagingFactor == 0 {
		c.ExpressPackagingFactor = 1.5
	}
	if c.PlatformFeePct == 0 {
		c.PlatformFeePct = 3.0
	}
	if c.OverheadPct == 0 {
		c.OverheadPct = 5.0
	}
}

// Validate checks that every configured rate is usable.
func (c Config) Validate() error {
	if c.FuelPricePerLiter <= 0 {
		return fmt.Errorf("costs: fuel price must be positive")
	}
	for typ, r := range c.LaborRatePerHour {
		if r < 0 {
			return fmt.Errorf("costs: negative labor rate for %s", typ)
		}
	}
	for typ, r := range c.MaintenancePerKm {
		if r < 0 {
			return fmt.Errorf("costs: negative maintenance rate for %s", typ)
		}
	}
	if c.InsuranceBase < 0 || c.InsuranceRatePerKg < 0 || c.PackagingBase < 0 {
		return fmt.Errorf("costs: base rates must be non-negative")
	}
	if c.ExpressPackagingFactor < 1 {
		return fmt.Errorf("costs: express packaging factor must be >= 1")
	}
	if c.PlatformFeePct < 0 || c.PlatformFeePct > 100 {
		return fmt.Errorf("costs: platform fee pct out of range")
	}
	if c.OverheadPct < 0 || c.OverheadPct > 100 {
		return fmt.Errorf("costs: overhead pct out of range")
	}
	return nil
}
