// Package domain provides domain models used across the application.
package domain

import "time"

// InjectionPoint is the validated, scored selector returned for a target description.
// It is the only value that leaves the engine; callers own its persistence.
type InjectionPoint struct {
	// ID uniquely identifies this analysis result
	ID string `json:"id" yaml:"id"`
	// Selector is the cleaned primary selector
	Selector string `json:"selector" yaml:"selector"`
	// Confidence is a score from 0.0 to 1.0
	Confidence float64 `json:"confidence" yaml:"confidence"`
	// AlternativeSelectors are ordered fallbacks; never contains Selector or duplicates
	AlternativeSelectors []string `json:"alternative_selectors" yaml:"alternative_selectors"`
	// Reasoning explains how the selector was chosen
	Reasoning string `json:"reasoning" yaml:"reasoning"`
	// OriginalText is the trimmed text of the resolved element, if any
	OriginalText string `json:"original_text,omitempty" yaml:"original_text,omitempty"`
	// Strategy is the tier name of the chosen selector
	Strategy string `json:"strategy" yaml:"strategy"`
	// Timestamp is when the analysis completed
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NotFoundResult carries the oracle's negative answer, or the engine's own when
// nothing resolved.
type NotFoundResult struct {
	Reason      string   `json:"reason"      yaml:"reason"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}
