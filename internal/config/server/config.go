// Package server provides server configuration types and functions.
package server

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// APIKeyParts is the number of parts in an API key (id:key)
const APIKeyParts = 2

// Server defaults.
const (
	DefaultAddress      = ":8080"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// Config represents server-specific configuration settings.
type Config struct {
	// Address is the address to listen on (e.g., ":8080")
	Address string `mapstructure:"address" yaml:"address"`
	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	// SecurityEnabled requires an X-API-Key header on API routes
	SecurityEnabled bool `mapstructure:"security_enabled" yaml:"security_enabled"`
	// APIKey is the API key used for authentication
	APIKey string `json:"-" mapstructure:"api_key" yaml:"api_key"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("server address must be specified")
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.IdleTimeout < 0 {
		return errors.New("server timeouts must not be negative")
	}

	if c.SecurityEnabled {
		if c.APIKey == "" {
			return errors.New("server security is enabled but no API key is provided")
		}

		// Expected format: "id:key"
		parts := strings.Split(c.APIKey, ":")
		if len(parts) != APIKeyParts {
			return fmt.Errorf("invalid API key format: expected 'id:key' but got %q", c.APIKey)
		}
		if parts[0] == "" {
			return errors.New("API key ID cannot be empty")
		}
		if parts[1] == "" {
			return errors.New("API key value cannot be empty")
		}
	}

	return nil
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		Address:      DefaultAddress,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}
}
