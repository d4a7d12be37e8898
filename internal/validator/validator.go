// Package validator resolves CSS selectors against parsed documents without ever
// failing on malformed selector input.
package validator

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
)

const (
	// MaxSelectorLength is the longest selector accepted.
	MaxSelectorLength = 1000
	// maxDescriptors caps the per-resolution diagnostics.
	maxDescriptors = 5
)

// dangerousMarkers never appear in a legitimate CSS selector.
var dangerousMarkers = []string{"javascript:", "<script", "onerror=", "onload="}

// Resolution is the outcome of querying one selector against one document.
type Resolution struct {
	Found bool `json:"found"`
	Count int  `json:"count"`
	// Descriptors summarise up to five matches as tag#id.class
	Descriptors []string `json:"descriptors"`
	// Invalid is set when the selector could not be compiled
	Invalid bool `json:"invalid,omitempty"`
}

// Unique reports whether exactly one element matched.
func (r Resolution) Unique() bool {
	return r.Found && r.Count == 1
}

// Compile checks and compiles selector.
func Compile(selector string) (cascadia.Selector, error) {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSelector)
	}
	if len(trimmed) > MaxSelectorLength {
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrInvalidSelector, len(trimmed), MaxSelectorLength)
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range dangerousMarkers {
		if strings.Contains(lower, marker) {
			return nil, fmt.Errorf("%w: contains %q", ErrInvalidSelector, marker)
		}
	}

	compiled, err := cascadia.Compile(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelector, err)
	}
	return compiled, nil
}

// IsParseable reports whether selector compiles.
func IsParseable(selector string) bool {
	_, err := Compile(selector)
	return err == nil
}

// ResolveIn queries selector against doc. It never returns an error; an invalid
// selector resolves to nothing.
func ResolveIn(doc *document.Document, selector string) Resolution {
	compiled, err := Compile(selector)
	if err != nil {
		return Resolution{Invalid: true, Descriptors: []string{}}
	}

	matches := doc.Match(compiled)
	res := Resolution{
		Found:       matches.Length() > 0,
		Count:       matches.Length(),
		Descriptors: make([]string, 0, min(matches.Length(), maxDescriptors)),
	}
	for i, n := range matches.Nodes {
		if i == maxDescriptors {
			break
		}
		res.Descriptors = append(res.Descriptors, document.Describe(n))
	}
	return res
}

// Resolve parses markup with the default limits and queries selector against it.
// The error reports only document preconditions such as size.
func Resolve(selector, markup string) (Resolution, error) {
	doc, err := document.Parse(markup, document.DefaultLimits())
	if err != nil {
		return Resolution{}, err
	}
	return ResolveIn(doc, selector), nil
}

// ExistsUniquelyIn reports whether selector matches exactly one element of doc.
func ExistsUniquelyIn(doc *document.Document, selector string) bool {
	return ResolveIn(doc, selector).Unique()
}

// ExistsUniquely reports whether selector matches exactly one element of markup.
// Unusable markup is treated as no match.
func ExistsUniquely(selector, markup string) bool {
	res, err := Resolve(selector, markup)
	if err != nil {
		return false
	}
	return res.Unique()
}
