// Package resolver turns an untrusted hint and a page into a validated,
// scored InjectionPoint.
package resolver

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/generator"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
)

const (
	// DefaultMaxCandidates caps the selectors scored per analysis.
	DefaultMaxCandidates = 40
	// DefaultMaxAlternatives caps the fallbacks returned on an InjectionPoint.
	DefaultMaxAlternatives = 10
)

// Engine runs analyses. It keeps no state between calls and is safe for
// concurrent use; every call parses its own document.
type Engine struct {
	log             logger.Interface
	limits          document.Limits
	maxCandidates   int
	maxAlternatives int
	synth           *generator.Synthesizer
	now             func() time.Time
	newID           func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimits sets the document parse limits.
func WithLimits(limits document.Limits) Option {
	return func(e *Engine) {
		e.limits = limits
	}
}

// WithMaxCandidates caps the selectors scored per analysis.
func WithMaxCandidates(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxCandidates = n
		}
	}
}

// WithMaxAlternatives caps the fallbacks returned per analysis.
func WithMaxAlternatives(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxAlternatives = n
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides InjectionPoint ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New creates an Engine.
func New(log logger.Interface, opts ...Option) *Engine {
	if log == nil {
		log = logger.NewNoOp()
	}
	e := &Engine{
		log:             log.WithComponent("resolver"),
		limits:          document.DefaultLimits(),
		maxCandidates:   DefaultMaxCandidates,
		maxAlternatives: DefaultMaxAlternatives,
		now:             time.Now,
		newID:           uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.synth = generator.NewSynthesizer(
		generator.WithMaxCandidates(e.maxCandidates),
		generator.WithLogger(e.log),
	)
	return e
}
