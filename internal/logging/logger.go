package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	buffer *Buffer
)

// LogLevelEnvVar is the environment variable that controls logging verbosity
// when no level is configured.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "TUIB_LOG_LEVEL"

// DefaultLevel is used when neither the options nor the environment set one.
const DefaultLevel = "info"

// Options configures Initialize.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File, when set, receives a copy of every entry.
	File string
	// Lines is the capacity of the in-memory buffer.
	Lines int
}

// Initialize creates the global logger. Entries always go to the in-memory
// buffer; stdout is never written to since the terminal belongs to the UI.
func Initialize(opts Options) error {
	level, err := ParseLevel(resolveLevel(opts.Level))
	if err != nil {
		return err
	}

	buf := NewBuffer(opts.Lines)
	sink := zapcore.AddSync(buf)

	if opts.File != "" {
		file, _, err := zap.Open(opts.File)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		sink = zapcore.NewMultiWriteSyncer(sink, file)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), sink, level)

	logger = zap.New(core, zap.AddCaller())
	buffer = buf
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

func resolveLevel(level string) string {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		level = DefaultLevel
	}
	return level
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until Initialize is called
		logger = zap.NewNop()
	}
	return logger
}

// GetBuffer returns the buffer the global logger writes to, or nil before
// Initialize.
func GetBuffer() *Buffer {
	return buffer
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
