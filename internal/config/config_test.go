package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if filepath.Base(configDir) != "tuib" {
		t.Errorf("GetConfigDir() = %v, should end with 'tuib'", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Default().Version = %v, want 1", cfg.Version)
	}
	if cfg.XrandrPath != "xrandr" {
		t.Errorf("Default().XrandrPath = %v, want xrandr", cfg.XrandrPath)
	}
	if cfg.TickRate != 50*time.Millisecond {
		t.Errorf("Default().TickRate = %v, want 50ms", cfg.TickRate)
	}
	if cfg.QueueCapacity != 256 {
		t.Errorf("Default().QueueCapacity = %v, want 256", cfg.QueueCapacity)
	}
	if cfg.Step != 1 {
		t.Errorf("Default().Step = %v, want 1", cfg.Step)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
version: 1
xrandr_path: /usr/bin/xrandr
tick_rate: 100ms
step: 5
log_level: debug
keys:
  Quit: [q, esc]
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.XrandrPath != "/usr/bin/xrandr" {
		t.Errorf("XrandrPath = %v", cfg.XrandrPath)
	}
	if cfg.TickRate != 100*time.Millisecond {
		t.Errorf("TickRate = %v, want 100ms", cfg.TickRate)
	}
	if cfg.Step != 5 {
		t.Errorf("Step = %v, want 5", cfg.Step)
	}
	if cfg.QueueCapacity != 256 {
		t.Errorf("expected omitted QueueCapacity to keep default, got %d", cfg.QueueCapacity)
	}
	if got := strings.Join(cfg.Keys["Quit"], ","); got != "q,esc" {
		t.Errorf("Keys[Quit] = %v", got)
	}

	opts := cfg.LoggingOptions()
	if opts.Level != "debug" || opts.Lines != cfg.LogLines {
		t.Errorf("unexpected logging options %+v", opts)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"version", "version: 2", "version"},
		{"empty xrandr", "xrandr_path: ' '", "xrandr_path"},
		{"zero tick", "tick_rate: 0s", "tick_rate"},
		{"negative queue", "queue_capacity: -1", "queue_capacity"},
		{"step too large", "step: 101", "step"},
		{"bad level", "log_level: loud", "log_level"},
		{"empty keys", "keys:\n  Quit: []", "keys.Quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("step: [1, 2"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("expected a parse error, not a validation error")
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Step != 1 {
		t.Errorf("expected defaults, got step %d", cfg.Step)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nstep: 10\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Step != 10 {
		t.Errorf("Step = %v, want 10", cfg.Step)
	}
}
