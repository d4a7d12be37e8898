// Package generator synthesizes alternative CSS selectors for a resolved element.
package generator

import (
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
)

// DefaultMaxCandidates caps the selectors produced for one element.
const DefaultMaxCandidates = 40

// Synthesizer enumerates selectors for an element using independent strategies,
// most robust first. It holds no per-call state and is safe for concurrent use.
type Synthesizer struct {
	maxCandidates int
	log           logger.Interface
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithMaxCandidates caps the number of selectors returned.
func WithMaxCandidates(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.maxCandidates = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log logger.Interface) Option {
	return func(s *Synthesizer) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		maxCandidates: DefaultMaxCandidates,
		log:           logger.NewNoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
