package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the tool.
const EnvPrefix = "OCTICONS_SPRITE_"

// ParseEnv loads configuration from OCTICONS_SPRITE_* environment variables.
// Field tags name the variable without the prefix.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
