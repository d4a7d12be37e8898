// Package stability decides whether an id or class name looks hand-authored
// (stable across deploys) or produced by a build or templating system.
package stability

import "regexp"

// Verdict is the outcome a rule assigns to an identifier it matches.
type Verdict string

const (
	// VerdictGenerated marks a build- or template-generated identifier.
	VerdictGenerated Verdict = "generated"
	// VerdictStableShape marks an identifier with a hand-authored shape.
	VerdictStableShape Verdict = "stable_shape"
)

// Rule is a named pattern in a classification table.
type Rule struct {
	// Name identifies the rule in diagnostics and tests
	Name string
	// Pattern is matched against the whole identifier
	Pattern *regexp.Regexp
	// Verdict is assigned when Pattern matches
	Verdict Verdict
	// Rationale is a short human-readable explanation
	Rationale string
	// weight orders stable shapes; higher is preferred
	weight int
}

// generatedRules is evaluated in order; the first match decides.
var generatedRules = []Rule{
	{
		Name:      "numeric",
		Pattern:   regexp.MustCompile(`^\d+$`),
		Verdict:   VerdictGenerated,
		Rationale: "purely numeric identifier",
	},
	{
		Name:      "hex-run",
		Pattern:   regexp.MustCompile(`[0-9a-fA-F]{8,}`),
		Verdict:   VerdictGenerated,
		Rationale: "contains a run of 8 or more hex characters",
	},
	{
		Name:      "alnum-run",
		Pattern:   regexp.MustCompile(`[A-Za-z0-9]{20,}`),
		Verdict:   VerdictGenerated,
		Rationale: "contains a run of 20 or more alphanumeric characters",
	},
	{
		Name:      "double-dash-digits",
		Pattern:   regexp.MustCompile(`[A-Za-z]--\d+`),
		Verdict:   VerdictGenerated,
		Rationale: "template token of the form word--digits",
	},
	{
		Name:      "long-digit-suffix",
		Pattern:   regexp.MustCompile(`[A-Za-z]-\d{10,}`),
		Verdict:   VerdictGenerated,
		Rationale: "template token of the form word-digits with 10 or more digits",
	},
	{
		Name:      "template-prefix",
		Pattern:   regexp.MustCompile(`^template--`),
		Verdict:   VerdictGenerated,
		Rationale: "storefront template section prefix",
	},
	{
		Name:      "slide-prefix",
		Pattern:   regexp.MustCompile(`^slide-`),
		Verdict:   VerdictGenerated,
		Rationale: "storefront slideshow slide prefix",
	},
	{
		Name:      "section-prefix",
		Pattern:   regexp.MustCompile(`^section-`),
		Verdict:   VerdictGenerated,
		Rationale: "storefront section prefix",
	},
	{
		Name:      "block-prefix",
		Pattern:   regexp.MustCompile(`^block-`),
		Verdict:   VerdictGenerated,
		Rationale: "storefront block prefix",
	},
	{
		Name:      "embedded-section",
		Pattern:   regexp.MustCompile(`.-section-`),
		Verdict:   VerdictGenerated,
		Rationale: "storefront section marker inside the identifier",
	},
}

// stableShapes lists hand-authored naming conventions, most specific first.
var stableShapes = []Rule{
	{
		Name:      "bem-element",
		Pattern:   regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*__[a-z][a-z0-9]*(-[a-z0-9]+)*(--[a-z0-9]+(-[a-z0-9]+)*)?$`),
		Verdict:   VerdictStableShape,
		Rationale: "BEM element block__elem",
		weight:    5,
	},
	{
		Name:      "triple-kebab",
		Pattern:   regexp.MustCompile(`^[a-z]+-[a-z]+-[a-z]+$`),
		Verdict:   VerdictStableShape,
		Rationale: "three-word kebab-case name",
		weight:    4,
	},
	{
		Name:      "bem-modifier",
		Pattern:   regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*--[a-z][a-z0-9]*(-[a-z0-9]+)*$`),
		Verdict:   VerdictStableShape,
		Rationale: "BEM modifier block--mod",
		weight:    3,
	},
	{
		Name:      "kebab-case",
		Pattern:   regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)+$`),
		Verdict:   VerdictStableShape,
		Rationale: "kebab-case name",
		weight:    3,
	},
	{
		Name:      "single-word",
		Pattern:   regexp.MustCompile(`^[a-z]+$`),
		Verdict:   VerdictStableShape,
		Rationale: "single lowercase word",
		weight:    2,
	},
}

// GeneratedRules returns a copy of the generated-identifier catalog in evaluation order.
func GeneratedRules() []Rule {
	return append([]Rule(nil), generatedRules...)
}

// StableShapes returns a copy of the stable-shape catalog in evaluation order.
func StableShapes() []Rule {
	return append([]Rule(nil), stableShapes...)
}
