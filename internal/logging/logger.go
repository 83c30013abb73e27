package logging

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is swapped by Initialize while background goroutines may be logging
var logger atomic.Pointer[zap.Logger]

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "COMBOBOX_LOG_LEVEL"

// DefaultLogFile is used when a level is set but no file is given
const DefaultLogFile = "combobox.log"

// Initialize creates a new logger with the specified level writing to file.
// If level is empty, it checks COMBOBOX_LOG_LEVEL.
// If neither is set, logging is disabled.
func Initialize(level, file string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger.Store(zap.NewNop())
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if file == "" {
		file = DefaultLogFile
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{file},
		ErrorOutputPaths: []string{file},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Store(built)

	return nil
}

// ParseLevel maps a level name to a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	// Silent until Initialize is called
	logger.CompareAndSwap(nil, zap.NewNop())
	return logger.Load()
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// Named returns a child logger for a component
func Named(name string) *zap.Logger {
	return GetLogger().Named(name)
}

// Sync flushes any buffered log entries
func Sync() error {
	if l := logger.Load(); l != nil {
		return l.Sync()
	}
	return nil
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}
