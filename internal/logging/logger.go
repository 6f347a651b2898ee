package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "ELYSIUM_LOG_LEVEL"

// LogFileName is the file created inside the data directory when logging is on.
const LogFileName = "elysium.log"

// Initialize creates a new logger with the specified level, appending to path.
// If level is empty, it checks ELYSIUM_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The terminal belongs to the dashboard while it runs, so output never goes
// to stdout; an empty path falls back to stderr for use outside the TUI.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	// Colour codes would end up verbatim in the log file.
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LevelFromVerbosity converts a repeated -v count into a level name.
// Zero returns "" so the environment variable or silent mode decides.
func LevelFromVerbosity(count int) string {
	switch {
	case count <= 0:
		return ""
	case count == 1:
		return "info"
	default:
		return "debug"
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
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

// LogAction logs an action drained from the dispatch queue.
// High-frequency actions (tick, render) are only worth logging at debug.
func LogAction(kind string, detail string) {
	Debug("Action dispatched",
		zap.String("action", kind),
		zap.String("detail", detail),
	)
}

// LogRefresh logs the outcome of a background data refresh.
func LogRefresh(event string, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		Warn("Refresh failed", append(fields, zap.Error(err))...)
		return
	}
	Info("Refresh event", fields...)
}

// LogAPICall logs a completed remote listing call.
func LogAPICall(service, operation string, pages, items int, elapsed time.Duration) {
	Debug("API call completed",
		zap.String("service", service),
		zap.String("operation", operation),
		zap.Int("pages", pages),
		zap.Int("items", items),
		zap.Duration("elapsed", elapsed),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
