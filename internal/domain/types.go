// Package domain provides domain models used across the application.
package domain

import "fmt"

// Tier ranks selector strategies by expected robustness.
// Lower values are more robust and win ties between equal confidences.
type Tier int

const (
	// TierDataAttribute covers [data-testid="..."] selectors.
	TierDataAttribute Tier = iota
	// TierAriaRole covers role and aria-label attribute selectors.
	TierAriaRole
	// TierCleanID covers #id selectors whose id is not generated.
	TierCleanID
	// TierSemanticClass covers stable class combinations.
	TierSemanticClass
	// TierParentRelation covers parent- and grandparent-relative selectors.
	TierParentRelation
	// TierTextContent covers :contains() text matches.
	TierTextContent
	// TierTagFallback covers the bare tag selector.
	TierTagFallback
	// TierUnknown is used for external selectors whose shape is not recognised.
	TierUnknown
)

var tierNames = map[Tier]string{
	TierDataAttribute:  "data_attribute",
	TierAriaRole:       "aria_role",
	TierCleanID:        "clean_id",
	TierSemanticClass:  "semantic_class",
	TierParentRelation: "parent_relation",
	TierTextContent:    "text_content",
	TierTagFallback:    "tag_fallback",
	TierUnknown:        "unknown",
}

// String returns the snake_case name of the tier.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return tierNames[TierUnknown]
}

// MarshalText encodes the tier as its name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(text []byte) error {
	for tier, name := range tierNames {
		if name == string(text) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", text)
}

// CandidateSource records where a selector candidate came from.
type CandidateSource string

const (
	// SourceOracle is the primary selector supplied by the external oracle.
	SourceOracle CandidateSource = "oracle"
	// SourceOracleAlternative is an alternative selector supplied by the oracle.
	SourceOracleAlternative CandidateSource = "oracle_alternative"
	// SourceSynthesized is a selector produced by the synthesizer.
	SourceSynthesized CandidateSource = "synthesized"
)

// SelectorCandidate is a selector string with the strategy tier that produced it.
type SelectorCandidate struct {
	Selector string          `json:"selector"  yaml:"selector"`
	Tier     Tier            `json:"tier"      yaml:"tier"`
	Source   CandidateSource `json:"source"    yaml:"source"`
}

// Verdict is the reliability verdict for one selector against one document.
type Verdict struct {
	// Matches is true when the selector matched at least one element
	Matches bool `json:"matches" yaml:"matches"`
	// MatchCount is the number of matched elements
	MatchCount int `json:"match_count" yaml:"match_count"`
	// Confidence is a score from 0.0 to 1.0
	Confidence float64 `json:"confidence" yaml:"confidence"`
	// Works is true only for a unique, non-generated match
	Works bool `json:"works" yaml:"works"`
	// Reason is a short human-readable rationale
	Reason string `json:"reason" yaml:"reason"`
}

// ScoredCandidate pairs a candidate with its verdict.
type ScoredCandidate struct {
	SelectorCandidate `yaml:",inline"`
	Verdict           Verdict `json:"verdict" yaml:"verdict"`
}
