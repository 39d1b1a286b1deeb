package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// ErrBadLogLevel indicates LEVELSAFE_LOG_LEVEL is not a zap level name.
var ErrBadLogLevel = errors.New("config: unknown log level")

// Config is the process configuration.
type Config struct {
	LogLevel string `env:"LEVELSAFE_LOG_LEVEL" envDefault:"warn"`
	Input    string `env:"LEVELSAFE_INPUT" envDefault:"day2.txt"`
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level returns LogLevel as a zapcore.Level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return lvl, nil
}
