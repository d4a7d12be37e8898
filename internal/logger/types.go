// Package logger provides logging functionality for the application.
package logger

// Level represents the logging level.
type Level string

const (
	// DebugLevel logs debug messages.
	DebugLevel Level = "debug"
	// InfoLevel logs info messages.
	InfoLevel Level = "info"
	// WarnLevel logs warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel logs error messages.
	ErrorLevel Level = "error"
	// FatalLevel logs fatal messages and exits.
	FatalLevel Level = "fatal"
)

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level.
	Level Level `yaml:"level" json:"level"`
	// Development enables development mode.
	Development bool `yaml:"development" json:"development"`
	// Encoding sets the logger's encoding (console or json).
	Encoding string `yaml:"encoding" json:"encoding"`
	// Output is stdout, stderr or file.
	Output string `yaml:"output" json:"output"`
	// File is the log file path when Output is file.
	File string `yaml:"file" json:"file"`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `yaml:"max_size" json:"max_size"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups" json:"max_backups"`
	// MaxAgeDays is the age after which rotated files are removed.
	MaxAgeDays int `yaml:"max_age" json:"max_age"`
	// Compress gzips rotated files.
	Compress bool `yaml:"compress" json:"compress"`
}
