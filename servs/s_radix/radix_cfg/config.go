package radix_cfg

import (
	"github.com/rskv-p/radix/config"
)

// config singleton for the radix service
var cfg *config.Config

// Load loads the service configuration from the specified file, from
// RADIX_CONFIG, or from RADIX_* environment variables.
func Load(path string) error {
	cfg = config.LoadWithFallback(path, "RADIX_")
	return nil
}

// C returns the loaded configuration, loading defaults on first use.
func C() *config.Config {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

// Set replaces the loaded configuration (used by tests).
func Set(c *config.Config) {
	cfg = c
}
