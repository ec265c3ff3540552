package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation limits accepted for the file logger.
const (
	maxLogFileSizeMB  = 100
	maxLogFileBackups = 10
	maxLogFileAgeDays = 365
)

// validate is shared by all settings types; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// LoggerSettings holds configuration settings for logging, including log level, type and file path.
// The rotation fields only apply to the file logger.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultLoggerSettings returns console logging at info level.
func DefaultLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	switch {
	case s.FilePath == "":
		return fmt.Errorf("file path is required for file logger")
	case s.MaxSize < 1 || s.MaxSize > maxLogFileSizeMB:
		return fmt.Errorf("max size must be between 1 and %d MB", maxLogFileSizeMB)
	case s.MaxBackups < 1 || s.MaxBackups > maxLogFileBackups:
		return fmt.Errorf("max backups must be between 1 and %d", maxLogFileBackups)
	case s.MaxAge < 1 || s.MaxAge > maxLogFileAgeDays:
		return fmt.Errorf("max age must be between 1 and %d days", maxLogFileAgeDays)
	}

	return nil
}
