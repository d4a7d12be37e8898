// Package domain provides domain models used across the application.
package domain

import "strings"

// Hint is the oracle's answer about which element to target.
// Its strings are candidates only; nothing in a hint is executed.
type Hint struct {
	// PrimarySelector is the oracle's best selector guess
	PrimarySelector string `json:"primary_selector,omitempty" mapstructure:"primary_selector"`
	// ElementIdentifier is a free-text description or visible text of the element
	ElementIdentifier string `json:"element_identifier,omitempty" mapstructure:"element_identifier"`
	// AlternativeSelectors are further selector guesses
	AlternativeSelectors []string `json:"alternative_selectors,omitempty" mapstructure:"alternative_selectors"`
	// Text is visible text to search for when no selector resolves
	Text string `json:"text,omitempty" mapstructure:"text"`
	// NotFound is set when the oracle could not find the element
	NotFound bool `json:"NOT_FOUND,omitempty" mapstructure:"NOT_FOUND"`
	// Reason explains a NotFound answer
	Reason string `json:"reason,omitempty" mapstructure:"reason"`
	// Suggestions accompany a NotFound answer
	Suggestions []string `json:"suggestions,omitempty" mapstructure:"suggestions"`
}

// HasSelector reports whether the hint carries any selector candidate.
func (h Hint) HasSelector() bool {
	if strings.TrimSpace(h.PrimarySelector) != "" {
		return true
	}
	for _, alt := range h.AlternativeSelectors {
		if strings.TrimSpace(alt) != "" {
			return true
		}
	}
	return false
}

// SearchText returns the text to use for the text-based fallback search.
func (h Hint) SearchText() string {
	if text := strings.TrimSpace(h.Text); text != "" {
		return text
	}
	return strings.TrimSpace(h.ElementIdentifier)
}

// IsEmpty reports whether the hint offers nothing to resolve.
func (h Hint) IsEmpty() bool {
	return !h.NotFound && !h.HasSelector() && h.SearchText() == ""
}
