// Package logging holds logger settings.
package logging

import (
	"errors"
	"fmt"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
)

var (
	validLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	validEncodings = map[string]bool{"json": true, "console": true}
	validOutputs   = map[string]bool{"stdout": true, "stderr": true, "file": true}
)

// Config holds logging-specific configuration settings.
type Config struct {
	// Level is the logging level (debug, info, warn, error)
	Level string `mapstructure:"level" yaml:"level"`
	// Encoding is the log encoding format (json, console)
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
	// Output is the log output destination (stdout, stderr, file)
	Output string `mapstructure:"output" yaml:"output"`
	// File is the log file path (only used when output is file)
	File string `mapstructure:"file" yaml:"file"`
	// Development enables development-friendly output
	Development bool `mapstructure:"development" yaml:"development"`
	// MaxSize is the maximum size of the log file in megabytes
	MaxSize int `mapstructure:"max_size" yaml:"max_size"`
	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// MaxAge is the maximum number of days to retain old log files
	MaxAge int `mapstructure:"max_age" yaml:"max_age"`
	// Compress determines if the rotated log files should be compressed
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !validLevels[c.Level] {
		return fmt.Errorf("invalid log level: %q", c.Level)
	}
	if !validEncodings[c.Encoding] {
		return fmt.Errorf("invalid log encoding: %q", c.Encoding)
	}
	if !validOutputs[c.Output] {
		return fmt.Errorf("invalid log output: %q", c.Output)
	}
	if c.Output == "file" && c.File == "" {
		return errors.New("log output is file but no file path is set")
	}
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}

// LoggerConfig converts the settings into a logger.Config.
func (c *Config) LoggerConfig() *logger.Config {
	return &logger.Config{
		Level:       logger.Level(c.Level),
		Development: c.Development,
		Encoding:    c.Encoding,
		Output:      c.Output,
		File:        c.File,
		MaxSizeMB:   c.MaxSize,
		MaxBackups:  c.MaxBackups,
		MaxAgeDays:  c.MaxAge,
		Compress:    c.Compress,
	}
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		Level:      string(logger.DefaultLevel),
		Encoding:   logger.DefaultEncoding,
		Output:     logger.DefaultOutput,
		MaxSize:    logger.DefaultMaxSizeMB,
		MaxBackups: logger.DefaultMaxBackups,
		MaxAge:     logger.DefaultMaxAgeDays,
		Compress:   true,
	}
}
