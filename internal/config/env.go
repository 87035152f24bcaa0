package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are process-wide defaults read from the environment. Flags and
// scenario files override them.
type Settings struct {
	Output    string `env:"ISRU_OUTPUT" envDefault:"text"`
	Precision int    `env:"ISRU_PRECISION" envDefault:"6"`
	LogLevel  string `env:"ISRU_LOG_LEVEL" envDefault:"warn"`
	Config    string `env:"ISRU_CONFIG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, s.validate()
}

// LoadSettingsFrom reads Settings from an explicit environment map.
func LoadSettingsFrom(environ map[string]string) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, s.validate()
}

func (s Settings) validate() error {
	if s.Precision < 1 || s.Precision > 17 {
		return fmt.Errorf("ISRU_PRECISION must be between 1 and 17, got %d", s.Precision)
	}
	return nil
}
