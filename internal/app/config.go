package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/orbitmap/internal/config"
	"github.com/specialistvlad/orbitmap/internal/orbit"
)

// ErrNoInput is returned when no layer of configuration names an input.
var ErrNoInput = errors.New("no input path configured: pass it as an argument, with -input, in the config file or via " + config.EnvInput)

// Config holds the values given on the command line. Empty fields defer to
// the config file, the environment and finally the built-in defaults.
type Config struct {
	InputPath  string
	ConfigPath string // optional .hcl settings file
	EnvFile    string // optional dotenv file

	Root   string
	Source string
	Target string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the command-line values.
func NewConfig(cfg Config) (*Config, error) {
	if err := validateLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) overrides() config.Model {
	return config.Model{
		InputPath: c.InputPath,
		Root:      orbit.Label(c.Root),
		Source:    orbit.Label(c.Source),
		Target:    orbit.Label(c.Target),
		LogLevel:  c.LogLevel,
		LogFormat: c.LogFormat,
	}
}

// validateLogging accepts empty values, which mean "not set".
func validateLogging(level, format string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}
	switch format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
	return nil
}
