package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProblem = "cooling"
	DefaultDigits  = 6
)

// Config captures one comparison run: the problem choice, the scalar grid
// tuple (x0, y0, h, xf), and which methods to compare.
type Config struct {
	Problem string     `yaml:"problem"`
	Grid    GridConfig `yaml:"grid"`
	Methods []string   `yaml:"methods"`
	Digits  int        `yaml:"digits"`
}

type GridConfig struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
	H  float64 `yaml:"h"`
	XF float64 `yaml:"xf"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Grid:    GridConfig{X0: 0, Y0: 160, H: 10, XF: 47},
		Methods: []string{"euler", "heun", "rk4"},
		Digits:  DefaultDigits,
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
