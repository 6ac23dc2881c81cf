package optimizer

import (
	"fmt"
	"math"
)

// weightSumTolerance is the allowed deviation of the objective weight sum
// from 1.0.
const weightSumTolerance = 1e-9

// Weights are the composite score coefficients for the three canonical
// objectives. They must sum to 1.0; violations fail, they are never
// renormalized behind the caller's back.
type Weights struct {
	Time      float64 `json:"time"`
	Cost      float64 `json:"cost"`
	Emissions float64 `json:"emissions"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Time + w.Cost + w.Emissions
}

// Validate checks that weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if w.Time < 0 || w.Cost < 0 || w.Emissions < 0 {
		return fmt.Errorf("%w: weights must be non-negative", ErrInvalidWeightConfiguration)
	}
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %.12f, must sum to 1.0", ErrInvalidWeightConfiguration, w.Sum())
	}
	return nil
}

// Config holds the engine constants. Everything here is externally
// overridable; the engine logic carries no literals.
type Config struct {
	// AverageSpeedKmh is the fleet-wide average speed used when a vehicle
	// record does not declare its own speed tier.
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
	Weights         Weights `json:"weights"`

	// Conservative defaults applied to synthesized routes when no direct
	// route record exists for a lane.
	EstimatedTrafficFactor float64 `json:"estimated_traffic_factor"`
	EstimatedWeatherFactor float64 `json:"estimated_weather_factor"`
	EstimatedTollPerKm     float64 `json:"estimated_toll_per_km"`

	// Workers bounds the parallel cost/emissions computation per call.
	Workers int `json:"workers"`
}

// SetDefaults applies the standard engine constants.
func (c *Config) SetDefaults() {
	if c.AverageSpeedKmh == 0 {
		c.AverageSpeedKmh = 60.0
	}
	if c.Weights == (Weights{}) {
		c.Weights = Weights{Time: 0.35, Cost: 0.35, Emissions: 0.30}
	}
	if c.EstimatedTrafficFactor == 0 {
		c.EstimatedTrafficFactor = 1.3
	}
	if c.EstimatedWeatherFactor == 0 {
		c.EstimatedWeatherFactor = 1.15
	}
	if c.EstimatedTollPerKm == 0 {
		c.EstimatedTollPerKm = 0.80
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
}

// Validate checks the engine constants.
func (c Config) Validate() error {
	if c.AverageSpeedKmh <= 0 {
		return fmt.Errorf("optimizer: average speed must be positive")
	}
	if c.EstimatedTrafficFactor < 1 || c.EstimatedWeatherFactor < 1 {
		return fmt.Errorf("optimizer: estimated route factors must be >= 1")
	}
	if c.EstimatedTollPerKm < 0 {
		return fmt.Errorf("optimizer: estimated toll rate must be non-negative")
	}
	if c.Workers < 1 {
		return fmt.Errorf("optimizer: workers must be positive")
	}
	return c.Weights.Validate()
}
