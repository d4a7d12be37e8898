// Package app holds application identity settings.
package app

import (
	"errors"
	"fmt"
)

// Default application settings.
const (
	DefaultName        = "pinpoint"
	DefaultVersion     = "0.1.0"
	DefaultEnvironment = "production"
)

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
	"test":        true,
}

// Config represents application-specific configuration settings.
type Config struct {
	// Name is the name of the application
	Name string `mapstructure:"name" yaml:"name"`
	// Version is the version of the application
	Version string `mapstructure:"version" yaml:"version"`
	// Environment is the application environment (development, staging, production, test)
	Environment string `mapstructure:"environment" yaml:"environment"`
	// Debug indicates whether debug mode is enabled
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return errors.New("environment must be specified")
	}
	if !validEnvironments[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}
	if c.Name == "" {
		return errors.New("application name must be specified")
	}
	if c.Version == "" {
		return errors.New("application version must be specified")
	}
	return nil
}

// IsDevelopment reports whether the application runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// New creates a new application configuration with the given options.
func New(opts ...Option) *Config {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option is a function that configures an application configuration.
type Option func(*Config)

// WithEnvironment sets the environment.
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithVersion sets the application version.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithDebug sets the debug mode.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		Name:        DefaultName,
		Version:     DefaultVersion,
		Environment: DefaultEnvironment,
	}
}
