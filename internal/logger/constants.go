// Package logger provides logging functionality for the application.
package logger

// Default configuration values.
const (
	// DefaultLevel is the default logging level.
	DefaultLevel = InfoLevel
	// DefaultEncoding is the default log encoding format.
	DefaultEncoding = "console"
	// DefaultOutput is the default log destination.
	DefaultOutput = "stdout"
	// DefaultMaxSizeMB is the default size at which a log file is rotated.
	DefaultMaxSizeMB = 100
	// DefaultMaxBackups is the default number of rotated files kept.
	DefaultMaxBackups = 3
	// DefaultMaxAgeDays is the default age after which rotated files are removed.
	DefaultMaxAgeDays = 28
)
