package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/priyamshah/greenroute/core/costs"
	"github.com/priyamshah/greenroute/core/emissions"
	"github.com/priyamshah/greenroute/core/metrics"
	"github.com/priyamshah/greenroute/core/optimizer"
)

type Config struct {
	Engine    optimizer.Config `json:"engine"`
	Costs     costs.Config     `json:"costs"`
	Emissions emissions.Config `json:"emissions"`
	Metrics   metrics.Config   `json:"metrics"`
}

// SetDefaults applies defaults to every section that was left unset.
func (c *Config) SetDefaults() {
	c.Engine.SetDefaults()
	c.Costs.SetDefaults()
	c.Emissions.SetDefaults()
	c.Metrics.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Costs.Validate(); err != nil {
		return err
	}
	if err := c.Emissions.Validate(); err != nil {
		return err
	}
	return c.Metrics.Validate()
}

// Default returns a fully populated configuration without reading a file.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("GR_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gr_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
