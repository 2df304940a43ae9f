package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config fields from GOPHACCOUNT_* environment variables.
// Unset variables leave the current value untouched.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
