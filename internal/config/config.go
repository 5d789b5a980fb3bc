package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDomainLow  = -5.0
	DefaultDomainHigh = 5.0
	DefaultSamples    = 200
	DefaultColor      = "blue"
	DefaultXLabel     = "x"
	DefaultYLabel     = "y"
)

type Config struct {
	DomainLow  float64 `yaml:"domain_low"`
	DomainHigh float64 `yaml:"domain_high"`
	Samples    int     `yaml:"samples"`
	XLabel     string  `yaml:"xlabel"`
	YLabel     string  `yaml:"ylabel"`
	Color      string  `yaml:"color"`
	Grid       bool    `yaml:"grid"`
	Smooth     bool    `yaml:"smooth"`
}

func DefaultConfig() *Config {
	return &Config{
		DomainLow:  DefaultDomainLow,
		DomainHigh: DefaultDomainHigh,
		Samples:    DefaultSamples,
		XLabel:     DefaultXLabel,
		YLabel:     DefaultYLabel,
		Color:      DefaultColor,
		Grid:       true,
		Smooth:     true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
