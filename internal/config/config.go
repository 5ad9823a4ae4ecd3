// SPDX-License-Identifier: MIT

// Package config resolves cargoplan settings from flags, CARGOPLAN_*
// environment variables and an optional YAML config file, in that order of
// precedence, and turns them into solver options.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cargolp/simplex"
)

// Keys shared by flags, environment and config file.
const (
	KeyEpsilon       = "epsilon"
	KeyMaxIterations = "max-iterations"
	KeyPivotRule     = "pivot-rule"
	KeyTrace         = "trace"
	KeyVerbose       = "verbose"
	KeyColor         = "color"

	// EnvPrefix prefixes every environment variable, e.g. CARGOPLAN_PIVOT_RULE.
	EnvPrefix = "CARGOPLAN"
)

// ErrInvalidConfig wraps every validation failure of Load.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved CLI configuration.
type Config struct {
	Epsilon       float64
	MaxIterations int // 0 keeps the engine default
	PivotRule     simplex.PivotRule
	Trace         bool
	Verbose       bool
	Color         bool
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyEpsilon, simplex.DefaultEpsilon)
	v.SetDefault(KeyMaxIterations, 0)
	v.SetDefault(KeyPivotRule, simplex.PivotDantzig.String())
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyColor, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags declares the solver flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64(KeyEpsilon, simplex.DefaultEpsilon, "zero tolerance for pivot decisions")
	fs.Int(KeyMaxIterations, 0, "pivot cap (0 = 10*(rows+cols))")
	fs.String(KeyPivotRule, simplex.PivotDantzig.String(), "entering-column rule: dantzig or bland")
	fs.Bool(KeyTrace, false, "print the tableau after every pivot")
	fs.BoolP(KeyVerbose, "v", false, "debug logging on stderr")
	fs.Bool(KeyColor, true, "styled section titles")
}

// BindFlags binds every flag declared by RegisterFlags to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyEpsilon, KeyMaxIterations, KeyPivotRule, KeyTrace, KeyVerbose, KeyColor} {
		if f := fs.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("config: bind %s: %w", key, err)
			}
		}
	}

	return nil
}

// ReadFile merges the YAML config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Load validates the values held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Epsilon:       v.GetFloat64(KeyEpsilon),
		MaxIterations: v.GetInt(KeyMaxIterations),
		Trace:         v.GetBool(KeyTrace),
		Verbose:       v.GetBool(KeyVerbose),
		Color:         v.GetBool(KeyColor),
	}
	if cfg.Epsilon < 0 || math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) {
		return Config{}, fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeyEpsilon, cfg.Epsilon)
	}
	if cfg.MaxIterations < 0 {
		return Config{}, fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeyMaxIterations, cfg.MaxIterations)
	}
	rule, err := simplex.ParsePivotRule(v.GetString(KeyPivotRule))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.PivotRule = rule

	return cfg, nil
}

// SolveOptions translates cfg into engine options. logger may be nil.
func (c Config) SolveOptions(logger *slog.Logger) []simplex.Option {
	opts := []simplex.Option{
		simplex.WithEpsilon(c.Epsilon),
		simplex.WithPivotRule(c.PivotRule),
		simplex.WithLogger(logger),
	}
	if c.MaxIterations > 0 {
		opts = append(opts, simplex.WithMaxIterations(c.MaxIterations))
	}

	return opts
}

// Level is the minimum log level: Debug when Verbose, Warn otherwise.
func (c Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
