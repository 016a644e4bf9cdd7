// Package config loads the wfpath run configuration with viper: defaults,
// an optional YAML file, WFPATH_* environment variables and bound command
// line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wfpath/logging"
	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/sample"
)

// Sentinel validation errors.
var (
	ErrMissingInput   = errors.New("config: no input data specified")
	ErrMissingPopsize = errors.New("config: no population size history specified")
	ErrInvalidStep    = errors.New("config: grid step must be positive")
	ErrInvalidGrid    = errors.New("config: minimum grid steps must be at least 1")
	ErrInvalidScale   = errors.New("config: generation time and N0 must be positive")
	ErrInvalidOutput  = errors.New("config: unknown output format")
	ErrInvalidUnits   = errors.New("config: popsize units must be relative or absolute")
)

// PopsizeConstant selects the constant-size history instead of a file.
const PopsizeConstant = "constant"

// Popsize unit names.
const (
	UnitsRelative = "relative"
	UnitsAbsolute = "absolute"
)

// Output formats.
const (
	FormatTSV   = "tsv"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config is the full run configuration.
type Config struct {
	Input        string         `mapstructure:"input"`
	Popsize      string         `mapstructure:"popsize"`
	PopsizeUnits string         `mapstructure:"popsize_units"`
	Seed         int64          `mapstructure:"seed"`
	Flip         bool           `mapstructure:"flip"`
	Grid         GridConfig     `mapstructure:"grid"`
	Scale        ScaleConfig    `mapstructure:"scale"`
	Output       OutputConfig   `mapstructure:"output"`
	Logging      logging.Config `mapstructure:"logging"`
}

// GridConfig holds the discretisation settings.
type GridConfig struct {
	Step     float64 `mapstructure:"step"`
	MinSteps int     `mapstructure:"min_steps"`
}

// ScaleConfig holds the unit conversion. The Set flags record whether the
// value came from the user rather than a default.
type ScaleConfig struct {
	GenerationTime    float64 `mapstructure:"generation_time"`
	N0                float64 `mapstructure:"n0"`
	GenerationTimeSet bool    `mapstructure:"-"`
	N0Set             bool    `mapstructure:"-"`
}

// OutputConfig selects how results are written.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	Path    string `mapstructure:"path"`
	Plot    string `mapstructure:"plot"`
	Summary bool   `mapstructure:"summary"`
}

// Sample returns the conversion used by package sample.
func (s ScaleConfig) Sample() sample.Scale {
	return sample.Scale{GenerationTime: s.GenerationTime, N0: s.N0}
}

// PopsizeFactors returns the divisors for popsize start times and sizes.
func (c *Config) PopsizeFactors() (timeFactor, sizeFactor float64) {
	timeFactor, sizeFactor = c.Scale.Sample().Factor(), 1
	if c.PopsizeUnits == UnitsAbsolute {
		sizeFactor = c.Scale.N0
	}

	return timeFactor, sizeFactor
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"input":           "input",
	"popsize":         "popsize",
	"popsize-units":   "popsize_units",
	"seed":            "seed",
	"flip":            "flip",
	"dt":              "grid.step",
	"min-grid":        "grid.min_steps",
	"generation-time": "scale.generation_time",
	"n0":              "scale.n0",
	"format":          "output.format",
	"output":          "output.path",
	"plot":            "output.plot",
	"summary":         "output.summary",
	"log-level":       "logging.level",
	"log-format":      "logging.format",
	"log-output":      "logging.output",
}

// Load reads configPath (optional, YAML) and the environment, binds every
// known flag present in flags (may be nil) and validates the result.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("wfpath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("WFPATH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Scale.GenerationTimeSet = v.IsSet("scale.generation_time")
	cfg.Scale.N0Set = v.IsSet("scale.n0")
	if !cfg.Scale.GenerationTimeSet {
		cfg.Scale.GenerationTime = sample.DefaultGenerationTime
	}
	if !cfg.Scale.N0Set {
		cfg.Scale.N0 = sample.DefaultN0
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets everything except the scale, whose defaults are applied
// after the IsSet checks. Keys without a default are bound to the
// environment so AutomaticEnv sees them during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("popsize", "")
	_ = v.BindEnv("scale.generation_time")
	_ = v.BindEnv("scale.n0")

	v.SetDefault("popsize_units", UnitsRelative)
	v.SetDefault("seed", 0)
	v.SetDefault("flip", false)

	v.SetDefault("grid.step", path.DefaultStep)
	v.SetDefault("grid.min_steps", path.DefaultMinSteps)

	v.SetDefault("output.format", FormatTSV)
	v.SetDefault("output.path", "-")
	v.SetDefault("output.summary", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", logging.FormatText)
	v.SetDefault("logging.output", logging.OutputStderr)
}

// Validate checks required inputs and numeric ranges.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrMissingInput
	}
	if c.Popsize == "" {
		return ErrMissingPopsize
	}
	if math.IsNaN(c.Grid.Step) || math.IsInf(c.Grid.Step, 0) || c.Grid.Step <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, c.Grid.Step)
	}
	if c.Grid.MinSteps < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidGrid, c.Grid.MinSteps)
	}
	if err := c.Scale.Sample().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScale, err)
	}
	switch c.PopsizeUnits {
	case UnitsRelative, UnitsAbsolute:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidUnits, c.PopsizeUnits)
	}
	switch c.Output.Format {
	case FormatTSV, FormatPlain, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output.Format)
	}

	return nil
}

// UnitsNote explains how raw times are interpreted given which scale
// settings the user supplied.
func (c *Config) UnitsNote() string {
	switch gen, n0 := c.Scale.GenerationTimeSet, c.Scale.N0Set; {
	case gen && !n0:
		return "Specified a generation time but not a base population size. " +
			"Unless your times are measured in units of 2N0 years, this is likely an error"
	case !gen && n0:
		return "Specified base population size but not a generation time. " +
			"Assuming times are measured in generations, converting all units to 2N0 generations"
	case gen && n0:
		return "Specified both generation time and base population size. " +
			"Assuming times are measured in years, converting all units to 2N0 generations"
	default:
		return "Did not specify either generation time or base population size. " +
			"Assuming times are in units of 2N0 generations"
	}
}
