// Package config loads and validates carbonboard configuration.
//
// Configuration is read from $CARBONBOARD_HOME/config.yaml (default
// ~/.carbonboard/config.yaml), overlaid with an optional --config file and
// finally with CARBONBOARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonboard/internal/logging"
)

// SchemaVersion is the config schema written by this release.
const SchemaVersion = "1.0.0"

// supportedSchema is the range of config schema versions this release reads.
const supportedSchema = ">= 1.0.0, < 2.0.0"

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// ValidFormats lists the accepted output formats.
//
//nolint:gochecknoglobals // Fixed lookup table.
var ValidFormats = []string{FormatTable, FormatJSON, FormatNDJSON, FormatCSV}

// Defaults.
const (
	DefaultPopulation       = 8500
	DefaultPredictionMonths = 6
	DefaultTreesPerTon      = 16.5
	DefaultPrecision        = 2
	maxPrecision            = 6
	maxPredictionMonths     = 12
)

// Config is the on-disk configuration shape.
type Config struct {
	Version    string           `yaml:"version"`
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Campus     CampusConfig     `yaml:"campus"`
}

// GenerationConfig controls synthetic data generation.
type GenerationConfig struct {
	// Seed fixes the random source. Nil draws a fresh seed per run.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	// Precision is the number of decimals for fractional figures such as
	// per-capita tons.
	Precision int `yaml:"precision"`
}

// LoggingConfig controls the logger built by the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// CampusConfig describes the campus the figures are reported for.
type CampusConfig struct {
	Name string `yaml:"name"`
	// Population divides total carbon for the per-capita figure.
	Population int `yaml:"population"`
	// PredictionMonths is how many projected months are appended to
	// history when a report shows predictions.
	PredictionMonths int `yaml:"prediction_months"`
	// TreesPerTon is the number of trees needed to offset one ton CO2e.
	TreesPerTon float64 `yaml:"trees_per_ton"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
		Campus: CampusConfig{
			Name:             "Campus",
			Population:       DefaultPopulation,
			PredictionMonths: DefaultPredictionMonths,
			TreesPerTon:      DefaultTreesPerTon,
		},
	}
}

// New returns the effective configuration without a --config overlay.
func New() (*Config, error) {
	return Load("")
}

// Load builds the effective configuration in precedence order: defaults,
// the user config file when present, the overlay file when overlayPath is
// set, then environment overrides. A user file or overlay that cannot be
// read or parsed is an error.
func Load(overlayPath string) (*Config, error) {
	cfg := Default()

	path, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}
	if err = cfg.LoadFile(path); err != nil {
		return nil, err
	}
	if overlayPath != "" {
		if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, fmt.Errorf("loading overlay: %w", err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFile unmarshals the YAML file at path onto c.
// A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting in c.
func (c *Config) Validate() error {
	var errs []error

	if err := validateSchemaVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(ValidFormats, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("%w: output.default_format %q (want one of %v)",
			ErrInvalidValue, c.Output.DefaultFormat, ValidFormats))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("%w: output.precision %d (want 0-%d)",
			ErrInvalidValue, c.Output.Precision, maxPrecision))
	}
	if c.Campus.Population < 0 {
		errs = append(errs, fmt.Errorf("%w: campus.population %d must not be negative",
			ErrInvalidValue, c.Campus.Population))
	}
	if c.Campus.PredictionMonths < 0 || c.Campus.PredictionMonths > maxPredictionMonths {
		errs = append(errs, fmt.Errorf("%w: campus.prediction_months %d (want 0-%d)",
			ErrInvalidValue, c.Campus.PredictionMonths, maxPredictionMonths))
	}
	if c.Campus.TreesPerTon < 0 {
		errs = append(errs, fmt.Errorf("%w: campus.trees_per_ton %g must not be negative",
			ErrInvalidValue, c.Campus.TreesPerTon))
	}
	if c.Logging.Format != "" && c.Logging.Format != logging.FormatJSON && c.Logging.Format != logging.FormatConsole {
		errs = append(errs, fmt.Errorf("%w: logging.format %q", ErrInvalidValue, c.Logging.Format))
	}

	return errors.Join(errs...)
}

func validateSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: version %q: %w", ErrInvalidValue, v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: config version %s (supported %s)", ErrUnsupportedVersion, v, supportedSchema)
	}
	return nil
}
