// Package engine holds the analysis limits.
package engine

import (
	"fmt"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
)

// Config holds the resource caps applied to every analysis.
type Config struct {
	// MaxDocumentBytes is the largest page accepted
	MaxDocumentBytes int `mapstructure:"max_document_bytes" yaml:"max_document_bytes"`
	// MaxCandidates caps the selectors scored per analysis
	MaxCandidates int `mapstructure:"max_candidates" yaml:"max_candidates"`
	// MaxAlternatives caps the fallbacks returned on an InjectionPoint
	MaxAlternatives int `mapstructure:"max_alternatives" yaml:"max_alternatives"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxDocumentBytes <= 0 {
		return fmt.Errorf("max_document_bytes must be positive, got %d", c.MaxDocumentBytes)
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.MaxAlternatives < 0 {
		return fmt.Errorf("max_alternatives must not be negative, got %d", c.MaxAlternatives)
	}
	return nil
}

// Options converts the settings into resolver options.
func (c *Config) Options() []resolver.Option {
	return []resolver.Option{
		resolver.WithLimits(document.Limits{MaxDocumentBytes: c.MaxDocumentBytes}),
		resolver.WithMaxCandidates(c.MaxCandidates),
		resolver.WithMaxAlternatives(c.MaxAlternatives),
	}
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		MaxDocumentBytes: document.DefaultMaxDocumentBytes,
		MaxCandidates:    resolver.DefaultMaxCandidates,
		MaxAlternatives:  resolver.DefaultMaxAlternatives,
	}
}
