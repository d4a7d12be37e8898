package config

import "errors"

// ErrConfigValidationFailed is returned when configuration validation fails
var ErrConfigValidationFailed = errors.New("configuration validation failed")
