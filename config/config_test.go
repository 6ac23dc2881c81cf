package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `engine:
  average_speed_kmh: 55
  weights:
    time: 0.5
    cost: 0.3
    emissions: 0.2
  workers: 2
costs:
  fuel_price_per_liter: 110
emissions:
  offset_price_per_kg: 1.5
metrics:
  prometheus_enabled: true
  prometheus_port: ":9100"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"average_speed_kmh", cfg.Engine.AverageSpeedKmh, 55.0},
		{"weights.time", cfg.Engine.Weights.Time, 0.5},
		{"weights.cost", cfg.Engine.Weights.Cost, 0.3},
		{"weights.emissions", cfg.Engine.Weights.Emissions, 0.2},
		{"workers", cfg.Engine.Workers, 2},
		{"fuel_price", cfg.Costs.FuelPricePerLiter, 110.0},
		{"offset_price", cfg.Emissions.OffsetPricePerKg, 1.5},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_port", cfg.Metrics.PrometheusPort, ":9100"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
	// Sections absent from the file keep their defaults.
	if cfg.Costs.PlatformFeePct != 3.0 {
		t.Errorf("platform fee default: got %v", cfg.Costs.PlatformFeePct)
	}
	if len(cfg.Emissions.RatingThresholds) == 0 {
		t.Errorf("rating thresholds default missing")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadRejectsInvalidWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `engine:
  weights:
    time: 0.9
    cost: 0.3
    emissions: 0.2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected weight validation error")
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("costs:\n  fuel_price_per_liter: 100\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GR_COSTS__FUEL_PRICE_PER_LITER", "95")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Costs.FuelPricePerLiter != 95 {
		t.Errorf("env override not applied: got %v", cfg.Costs.FuelPricePerLiter)
	}
}
