package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Bootstrap holds the process settings needed before any config file can be
// read.
type Bootstrap struct {
	Profile   string `env:"APP_PROFILE" envDefault:"local"`
	ConfigDir string `env:"APP_CONFIG_DIR" envDefault:"configs"`
}

// LoadBootstrap parses Bootstrap from the process environment.
func LoadBootstrap() (Bootstrap, error) {
	var b Bootstrap
	if err := env.Parse(&b); err != nil {
		return Bootstrap{}, fmt.Errorf("parse bootstrap env: %w", err)
	}
	return b, nil
}
