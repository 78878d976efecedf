package config

import (
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome         = "CARBONBOARD_HOME"
	EnvLogLevel     = "CARBONBOARD_LOG_LEVEL"
	EnvLogFormat    = "CARBONBOARD_LOG_FORMAT"
	EnvSeed         = "CARBONBOARD_SEED"
	EnvOutputFormat = "CARBONBOARD_OUTPUT_FORMAT"
)

// ApplyEnv overlays environment settings onto c. lookupEnv is injected so
// tests need not touch the process environment. Unparseable values are
// ignored.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
	if v, ok := lookupEnv(EnvSeed); ok && v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Generation.Seed = &seed
		}
	}
}
