package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultX      = 2.0
	DefaultDegree = 2
	DefaultSteps  = 10
)

type Config struct {
	X          float64  `yaml:"x"`
	Degree     int      `yaml:"degree"`
	Steps      int      `yaml:"steps"`
	Methods    []string `yaml:"methods"`
	Precisions []string `yaml:"precisions"`
}

func DefaultConfig() *Config {
	return &Config{
		X:          DefaultX,
		Degree:     DefaultDegree,
		Steps:      DefaultSteps,
		Methods:    []string{"dual", "shadow"},
		Precisions: []string{"single", "double", "quad"},
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
