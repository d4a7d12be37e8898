// Package common provides shared utilities for command implementations.
package common

import (
	"fmt"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/config"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
	"github.com/spf13/viper"
)

// CommandDeps holds common dependencies for all commands.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}

// NewEngine builds a resolver engine from the engine settings.
func (d CommandDeps) NewEngine() *resolver.Engine {
	return resolver.New(d.Logger, d.Config.Engine.Options()...)
}

// NewCommandDeps loads the configuration merged into the global viper
// instance and creates the logger.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logger.LoggerConfig())
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
	}
	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}
	return deps, nil
}
