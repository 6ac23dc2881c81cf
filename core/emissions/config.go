package emissions

import "fmt"

// Rating is the categorical efficiency bucket of a vehicle's emission factor.
type Rating string

const (
	RatingEfficient   Rating = "Efficient"
	RatingAverage     Rating = "Average"
	RatingInefficient Rating = "Inefficient"
)

// RatingThreshold is one row of the ordered rating table: factors up to and
// including MaxCO2KgPerKm receive Rating.
type RatingThreshold struct {
	MaxCO2KgPerKm float64 `json:"max_co2_kg_per_km"`
	Rating        Rating  `json:"rating"`
}

// Config holds the sustainability constants. The rating table is explicit
// configuration rather than inline conditionals so thresholds can be retuned
// without touching logic.
type Config struct {
	// OffsetPricePerKg is the carbon credit price in currency per kg CO2.
	OffsetPricePerKg float64 `json:"offset_price_per_kg"`
	// RatingThresholds is ordered ascending by MaxCO2KgPerKm; factors above
	// the last threshold are rated Inefficient.
	RatingThresholds []RatingThreshold `json:"rating_thresholds"`
}

// SetDefaults applies the default offset price (USD 15/ton at 83 INR/USD)
// and the standard rating buckets.
func (c *Config) SetDefaults() {
	if c.OffsetPricePerKg == 0 {
		c.OffsetPricePerKg = 1.245
	}
	if c.RatingThresholds == nil {
		c.RatingThresholds = []RatingThreshold{
			{MaxCO2KgPerKm: 0.2, Rating: RatingEfficient},
			{MaxCO2KgPerKm: 0.4, Rating: RatingAverage},
		}
	}
}

// Validate checks offset price and threshold ordering.
func (c Config) Validate() error {
	if c.OffsetPricePerKg < 0 {
		return fmt.Errorf("emissions: offset price must be non-negative")
	}
	prev := 0.0
	for i, th := range c.RatingThresholds {
		if th.MaxCO2KgPerKm <= prev {
			return fmt.Errorf("emissions: rating thresholds must be strictly ascending at index %d", i)
		}
		if th.Rating == "" {
			return fmt.Errorf("emissions: rating threshold %d has no rating", i)
		}
		prev = th.MaxCO2KgPerKm
	}
	return nil
}
