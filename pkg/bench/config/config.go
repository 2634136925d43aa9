// Package config loads and persists the benchmark configuration.
//
// The sweep parameters live in appsettings.json in the working directory,
// with TIMERBENCH_-prefixed environment variables taking precedence. The
// four sweep fields are required: a missing or malformed field is an error,
// never silently defaulted.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mkraun/timerbench/pkg/bench/types"
	"github.com/spf13/viper"
)

// Default file names used when no overrides are given.
const (
	DefaultConfigFile  = "appsettings.json"
	DefaultResultsFile = "results.txt"
)

// ErrConfig is wrapped by all configuration load failures.
var ErrConfig = errors.New("configuration error")

// requiredKeys are the sweep parameter fields that must be present.
var requiredKeys = []string{"StartValue", "IncrementValue", "EndValue", "SampleValue"}

// Config represents the full application configuration.
type Config struct {
	Params  types.Params
	Logging LoggingConfig
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Components map[string]string `mapstructure:"components"`
}

// Load reads the configuration from the given path (DefaultConfigFile when
// empty) and validates the sweep parameters.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("TIMERBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging defaults. The sweep fields get none: absent values must fail.
	v.SetDefault("Logging.Level", "info")
	v.SetDefault("Logging.Path", "")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: %s: missing required field %q", ErrConfig, path, key)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg.Params); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling %s: %w", ErrConfig, path, err)
	}
	if err := v.UnmarshalKey("Logging", &cfg.Logging); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling logging section: %w", ErrConfig, err)
	}

	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	return &cfg, nil
}

// Save writes the sweep parameters back to the given path, preserving the
// appsettings.json field names.
func Save(path string, p types.Params) error {
	if path == "" {
		path = DefaultConfigFile
	}

	content := fmt.Sprintf(`{
  "StartValue": %v,
  "IncrementValue": %v,
  "EndValue": %v,
  "SampleValue": %d
}
`, p.StartValue, p.IncrementValue, p.EndValue, p.SampleValue)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// WriteDefault writes a starter config file if none exists.
// Returns nil if the file is already present.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	return Save(path, types.Params{
		StartValue:     0.5,
		IncrementValue: 0.002,
		EndValue:       0.6,
		SampleValue:    20,
	})
}
