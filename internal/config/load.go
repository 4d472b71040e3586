package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/tuib/internal/display"
	"github.com/muurk/tuib/internal/logging"
)

const (
	appName    = "tuib"
	configFile = "config.yaml"
)

// ValidationError reports a config field with an unusable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Message)
}

// GetConfigDir returns the configuration directory for the application:
// $XDG_CONFIG_HOME/tuib or $HOME/.config/tuib.
func GetConfigDir() (string, error) {
	if runtime.GOOS != "darwin" {
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the configuration at path. An empty path means the default
// location, where a missing file yields the defaults. A missing file at an
// explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field. Action names in Keys are checked when the
// keymap is built.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return &ValidationError{Field: "version", Message: fmt.Sprintf("unsupported version %d (expected %d)", c.Version, CurrentVersion)}
	}
	if strings.TrimSpace(c.XrandrPath) == "" {
		return &ValidationError{Field: "xrandr_path", Message: "must not be empty"}
	}
	if c.TickRate <= 0 {
		return &ValidationError{Field: "tick_rate", Message: fmt.Sprintf("must be positive, got %s", c.TickRate)}
	}
	if c.QueueCapacity <= 0 {
		return &ValidationError{Field: "queue_capacity", Message: fmt.Sprintf("must be positive, got %d", c.QueueCapacity)}
	}
	if c.Step < display.MinValue || c.Step > display.MaxValue {
		return &ValidationError{Field: "step", Message: fmt.Sprintf("must be between %d and %d, got %d", display.MinValue, display.MaxValue, c.Step)}
	}
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return &ValidationError{Field: "log_level", Message: err.Error()}
		}
	}
	if c.LogLines <= 0 {
		return &ValidationError{Field: "log_lines", Message: fmt.Sprintf("must be positive, got %d", c.LogLines)}
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return &ValidationError{Field: "keys." + action, Message: "must list at least one key"}
		}
	}
	return nil
}
