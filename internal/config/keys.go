package config

import (
	"fmt"
	"strconv"
)

// Keys lists the dotted keys accepted by Get and Set.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Keys = []string{
	"version",
	"generation.seed",
	"output.default_format",
	"output.precision",
	"logging.level",
	"logging.format",
	"logging.file",
	"campus.name",
	"campus.population",
	"campus.prediction_months",
	"campus.trees_per_ton",
}

// Get returns the value stored under a dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "version":
		return c.Version, nil
	case "generation.seed":
		if c.Generation.Seed == nil {
			return "", nil
		}
		return strconv.FormatUint(*c.Generation.Seed, 10), nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.precision":
		return strconv.Itoa(c.Output.Precision), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "campus.name":
		return c.Campus.Name, nil
	case "campus.population":
		return strconv.Itoa(c.Campus.Population), nil
	case "campus.prediction_months":
		return strconv.Itoa(c.Campus.PredictionMonths), nil
	case "campus.trees_per_ton":
		return strconv.FormatFloat(c.Campus.TreesPerTon, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value and stores it under a dotted key. An empty value clears
// generation.seed. Set does not validate ranges; call Validate afterwards.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "version":
		c.Version = value
	case "generation.seed":
		if value == "" {
			c.Generation.Seed = nil
			return nil
		}
		var seed uint64
		if seed, err = strconv.ParseUint(value, 10, 64); err == nil {
			c.Generation.Seed = &seed
		}
	case "output.default_format":
		c.Output.DefaultFormat = value
	case "output.precision":
		c.Output.Precision, err = strconv.Atoi(value)
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	case "campus.name":
		c.Campus.Name = value
	case "campus.population":
		c.Campus.Population, err = strconv.Atoi(value)
	case "campus.prediction_months":
		c.Campus.PredictionMonths, err = strconv.Atoi(value)
	case "campus.trees_per_ton":
		c.Campus.TreesPerTon, err = strconv.ParseFloat(value, 64)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, value, err)
	}
	return nil
}
