package logger

import (
	"time"
)

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOp creates a new no-op logger instance.
func NewNoOp() Interface {
	return &NoOpLogger{}
}

// Debug logs a debug message.
func (l *NoOpLogger) Debug(msg string, fields ...any) {}

// Info logs an info message.
func (l *NoOpLogger) Info(msg string, fields ...any) {}

// Warn logs a warning message.
func (l *NoOpLogger) Warn(msg string, fields ...any) {}

// Error logs an error message.
func (l *NoOpLogger) Error(msg string, fields ...any) {}

// Fatal does nothing; it does not exit.
func (l *NoOpLogger) Fatal(msg string, fields ...any) {}

// With returns the receiver.
func (l *NoOpLogger) With(fields ...any) Interface {
	return l
}

// WithRequestID returns the receiver.
func (l *NoOpLogger) WithRequestID(requestID string) Interface {
	return l
}

// WithDuration returns the receiver.
func (l *NoOpLogger) WithDuration(duration time.Duration) Interface {
	return l
}

// WithError returns the receiver.
func (l *NoOpLogger) WithError(err error) Interface {
	return l
}

// WithComponent returns the receiver.
func (l *NoOpLogger) WithComponent(component string) Interface {
	return l
}
