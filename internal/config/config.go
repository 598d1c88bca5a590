package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds ambient settings of ftracker binaries.
// Training formulas are never configurable.
type Config struct {
	LogLevel string `envconfig:"FTRACKER_LOG_LEVEL" default:"info"`
	Workers  int    `envconfig:"FTRACKER_WORKERS" default:"1"`
}

// New reads configuration from environment
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
