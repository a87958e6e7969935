// Package config loads process settings from the environment and balance
// scenarios from YAML.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/logging"
)

// Settings are the process-level options read from GUILDSIM_* variables.
// Unset pointer fields leave the scenario value untouched.
type Settings struct {
	Scenario          string `env:"GUILDSIM_SCENARIO"`
	Seed              *int64 `env:"GUILDSIM_SEED"`
	FloorCap          int    `env:"GUILDSIM_FLOOR_CAP"`
	RestBetweenFloors *bool  `env:"GUILDSIM_REST_BETWEEN_FLOORS"`
	Workers           int    `env:"GUILDSIM_WORKERS" envDefault:"4"`

	LogLevel  string `env:"GUILDSIM_LOG_LEVEL" envDefault:"INFO"`
	LogFormat string `env:"GUILDSIM_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"GUILDSIM_LOG_FILE"`

	Telemetry bool `env:"GUILDSIM_TELEMETRY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings parses and validates Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "load settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks numeric ranges.
func (s Settings) Validate() error {
	vb := errors.NewValidationBuilder()
	if s.Workers < 1 {
		vb.Field("workers", "must be at least 1")
	}
	if s.FloorCap < 0 {
		vb.Field("floor_cap", "must not be negative")
	}
	return vb.Build()
}

// Logging returns the logger configuration.
func (s Settings) Logging() logging.Config {
	return logging.Config{
		Level:    s.LogLevel,
		Format:   s.LogFormat,
		FilePath: s.LogFile,
	}
}
