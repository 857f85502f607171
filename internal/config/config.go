package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Chobo"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Store struct {
		ID   string `envconfig:"STORE_ID" default:"store-001"`
		Name string `envconfig:"STORE_NAME" default:""`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Fixture struct {
		// Dir points at a directory of CSV fixture files used to seed
		// the in-memory stores on startup. Empty skips seeding.
		Dir string `envconfig:"FIXTURE_DIR" default:""`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
