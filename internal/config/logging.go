package config

import (
	"github.com/rshade/carbonboard/internal/logging"
)

// ToLoggingConfig converts LoggingConfig to logging.Config, keeping the
// logging defaults for empty fields.
//
// If File is set, Output becomes "file"; otherwise events go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if lc.Level != "" {
		cfg.Level = lc.Level
	}
	if lc.Format != "" {
		cfg.Format = lc.Format
	}
	if lc.File != "" {
		cfg.Output = logging.OutputFile
		cfg.File = lc.File
	}
	return cfg
}

// GetLoggingConfig returns a copy of the global Logging section.
// Overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
