// Package config provides configuration management for pinpoint.
// Values come from defaults, an optional YAML file and environment variables,
// merged by viper.
package config

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/app"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/engine"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/logging"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/server"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	// App holds application identity settings
	App *app.Config `mapstructure:"app" yaml:"app"`
	// Logger holds logging settings
	Logger *logging.Config `mapstructure:"logger" yaml:"logger"`
	// Server holds HTTP server settings
	Server *server.Config `mapstructure:"server" yaml:"server"`
	// Engine holds analysis limits
	Engine *engine.Config `mapstructure:"engine" yaml:"engine"`
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string][]string{
	"app.environment":           {"APP_ENV"},
	"app.debug":                 {"APP_DEBUG"},
	"logger.level":              {"LOG_LEVEL"},
	"logger.encoding":           {"LOG_FORMAT"},
	"logger.output":             {"LOG_OUTPUT"},
	"logger.file":               {"LOG_FILE"},
	"server.address":            {"PINPOINT_SERVER_ADDRESS"},
	"server.security_enabled":   {"PINPOINT_SERVER_SECURITY_ENABLED"},
	"server.api_key":            {"PINPOINT_SERVER_API_KEY"},
	"engine.max_document_bytes": {"PINPOINT_MAX_DOCUMENT_BYTES"},
	"engine.max_candidates":     {"PINPOINT_MAX_CANDIDATES"},
	"engine.max_alternatives":   {"PINPOINT_MAX_ALTERNATIVES"},
}

// NewConfig returns a Config holding every default.
func NewConfig() *Config {
	return &Config{
		App:    app.NewConfig(),
		Logger: logging.NewConfig(),
		Server: server.NewConfig(),
		Engine: engine.NewConfig(),
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("%w: app: %w", ErrConfigValidationFailed, err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("%w: logger: %w", ErrConfigValidationFailed, err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("%w: server: %w", ErrConfigValidationFailed, err)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("%w: engine: %w", ErrConfigValidationFailed, err)
	}
	return nil
}

// SetDefaults registers every default on v so that environment variables and
// config files can override them key by key.
func SetDefaults(v *viper.Viper) {
	d := NewConfig()

	v.SetDefault("app.name", d.App.Name)
	v.SetDefault("app.version", d.App.Version)
	v.SetDefault("app.environment", d.App.Environment)
	v.SetDefault("app.debug", d.App.Debug)

	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.encoding", d.Logger.Encoding)
	v.SetDefault("logger.output", d.Logger.Output)
	v.SetDefault("logger.file", d.Logger.File)
	v.SetDefault("logger.development", d.Logger.Development)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("logger.compress", d.Logger.Compress)

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("server.security_enabled", d.Server.SecurityEnabled)
	v.SetDefault("server.api_key", d.Server.APIKey)

	v.SetDefault("engine.max_document_bytes", d.Engine.MaxDocumentBytes)
	v.SetDefault("engine.max_candidates", d.Engine.MaxCandidates)
	v.SetDefault("engine.max_alternatives", d.Engine.MaxAlternatives)
}

// BindEnv enables environment overrides on v.
func BindEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", strings.Join(names, ", "), err)
		}
	}
	return nil
}

// Load decodes the merged settings of v, applies the development and debug
// adjustments and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if cfg.App.Debug {
		cfg.Logger.Level = "debug"
	}
	if cfg.App.IsDevelopment() {
		cfg.Logger.Development = true
		cfg.Logger.Encoding = "console"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
