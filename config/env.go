package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv applies LIMITLESS_* overrides onto target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
