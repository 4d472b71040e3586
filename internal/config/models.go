package config

import (
	"time"

	"github.com/muurk/tuib/internal/dispatch"
	"github.com/muurk/tuib/internal/logging"
	"github.com/muurk/tuib/internal/xrandr"
)

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// DefaultTickRate is the render loop period when none is configured.
const DefaultTickRate = 50 * time.Millisecond

// Config represents the user configuration file.
// It is read at startup and never written back.
type Config struct {
	Version       int                 `yaml:"version"`
	XrandrPath    string              `yaml:"xrandr_path,omitempty"`    // Path or name of the xrandr binary
	TickRate      time.Duration       `yaml:"tick_rate,omitempty"`      // Render loop period, e.g. "50ms"
	QueueCapacity int                 `yaml:"queue_capacity,omitempty"` // Pending intents before Send fails
	Step          int                 `yaml:"step,omitempty"`           // Increment/decrement magnitude
	LogLevel      string              `yaml:"log_level,omitempty"`      // Empty falls back to TUIB_LOG_LEVEL
	LogFile       string              `yaml:"log_file,omitempty"`       // Optional copy of the log
	LogLines      int                 `yaml:"log_lines,omitempty"`      // Lines kept for the diagnostics tab
	Keys          map[string][]string `yaml:"keys,omitempty"`           // Action name to key symbols
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	return &Config{
		Version:       CurrentVersion,
		XrandrPath:    xrandr.DefaultPath,
		TickRate:      DefaultTickRate,
		QueueCapacity: dispatch.DefaultCapacity,
		Step:          1,
		LogLines:      logging.DefaultLines,
	}
}

// LoggingOptions returns the logging settings of c.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level: c.LogLevel,
		File:  c.LogFile,
		Lines: c.LogLines,
	}
}
