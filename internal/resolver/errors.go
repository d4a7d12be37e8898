package resolver

import "errors"

var (
	// ErrNoMatch is returned by Synthesize when the selector matches nothing.
	ErrNoMatch = errors.New("selector matched no element")
	// ErrTooManySelectors is returned by Score when a request exceeds the candidate cap.
	ErrTooManySelectors = errors.New("too many selectors")
)
