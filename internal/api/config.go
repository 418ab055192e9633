package api

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server settings read from the environment.
type Config struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	ConfigDir     string        `env:"CONFIG_DIR" envDefault:"configs"`
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"5s"`
}

// ParseConfig loads Config from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
