package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "CARRENTAL_"

// parseEnv overlays cfg with CARRENTAL_* variables. Unset variables keep the
// current value.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
