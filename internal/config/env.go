package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// applyEnv overrides cfg with any BASEBALL_* variables that are set.
// Unset variables leave the loaded values alone.
func applyEnv(cfg *BaseballConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
