// Package config defines environment configuration structs and loaders.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/rankworks/topsis/internal/topsis"
)

// AppConfig is the full runtime configuration, loaded from the
// environment.
type AppConfig struct {
	EvaluatorEnvConfig
	LogEnvConfig
}

// LoadConfig parses the process environment into an AppConfig.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EvaluatorEnvConfig selects the evaluator's numeric edge-case policies.
type EvaluatorEnvConfig struct {
	TiePolicy        string `env:"TOPSIS_TIE_POLICY" envDefault:"dense"`
	DegeneratePolicy string `env:"TOPSIS_DEGENERATE_POLICY" envDefault:"midpoint"`
}

// LogEnvConfig configures logging.
type LogEnvConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseTiePolicy maps the TOPSIS_TIE_POLICY value to a topsis.TiePolicy.
func (c *EvaluatorEnvConfig) ParseTiePolicy() (topsis.TiePolicy, error) {
	switch strings.ToLower(c.TiePolicy) {
	case "dense":
		return topsis.TieDense, nil
	case "ordinal":
		return topsis.TieOrdinal, nil
	default:
		return 0, fmt.Errorf("unknown tie policy %q, expected dense or ordinal", c.TiePolicy)
	}
}

// ParseDegeneratePolicy maps the TOPSIS_DEGENERATE_POLICY value to a
// topsis.DegeneratePolicy.
func (c *EvaluatorEnvConfig) ParseDegeneratePolicy() (topsis.DegeneratePolicy, error) {
	switch strings.ToLower(c.DegeneratePolicy) {
	case "midpoint":
		return topsis.DegenerateMidpoint, nil
	case "error":
		return topsis.DegenerateError, nil
	default:
		return 0, fmt.Errorf("unknown degenerate policy %q, expected midpoint or error", c.DegeneratePolicy)
	}
}
