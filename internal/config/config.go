package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kylecz/blshoot/internal/shoot"
)

// Config mirrors shoot.Params in a yaml-friendly shape so solves can be
// described in files and shared.
type Config struct {
	Mach        float64 `yaml:"mach"`
	Temperature float64 `yaml:"temperature"`
	EtaMax      float64 `yaml:"eta_max"`
	N           int     `yaml:"n"`
	MaxIter     int     `yaml:"max_iter"`
	TolProfile  float64 `yaml:"tol_profile"`
	TolBC       float64 `yaml:"tol_bc"`
	Guess       Guess   `yaml:"guess"`
}

// Guess holds the starting values for the two free wall conditions.
type Guess struct {
	Alpha float64 `yaml:"alpha"` // f''(0)
	Beta  float64 `yaml:"beta"`  // T(0)
}

func DefaultConfig() *Config {
	return &Config{
		Mach:        shoot.DefaultMach,
		Temperature: shoot.DefaultTemperature,
		EtaMax:      shoot.DefaultEtaMax,
		N:           shoot.DefaultN,
		MaxIter:     shoot.DefaultMaxIter,
		TolProfile:  shoot.DefaultTolProfile,
		TolBC:       shoot.DefaultTolBC,
		Guess: Guess{
			Alpha: shoot.DefaultAlpha0,
			Beta:  shoot.DefaultBeta0,
		},
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

// Params converts the config into solver parameters.
func (c *Config) Params() shoot.Params {
	return shoot.Params{
		Mach:        c.Mach,
		Temperature: c.Temperature,
		EtaMax:      c.EtaMax,
		N:           c.N,
		MaxIter:     c.MaxIter,
		TolProfile:  c.TolProfile,
		TolBC:       c.TolBC,
		Alpha0:      c.Guess.Alpha,
		Beta0:       c.Guess.Beta,
	}
}
