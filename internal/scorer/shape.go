package scorer

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/stability"
)

// Shape confidences, most robust first.
const (
	dataTestIDConfidence    = 0.95
	ariaRoleConfidence      = 0.90
	cleanIDConfidence       = 0.85
	semanticClassConfidence = 0.80
	defaultConfidence       = 0.80
	textContentConfidence   = 0.60
	fragileChainConfidence  = 0.40
	positionConfidence      = 0.30

	// AmbiguousConfidenceCap bounds the confidence of a selector matching several elements.
	AmbiguousConfidenceCap = 0.30
	// GeneratedConfidenceCap bounds the confidence of a selector naming a generated identifier.
	GeneratedConfidenceCap = 0.10

	maxClassSegments = 3
	maxTokens        = 4
)

var (
	positionPseudo = regexp.MustCompile(`:nth-(child|of-type|last-child|last-of-type)\b`)
	identFragment  = regexp.MustCompile(`([#.])(-?[_a-zA-Z][_a-zA-Z0-9-]*)`)
	attrIdentity   = regexp.MustCompile(`\[\s*(id|class)\s*[~|^$*]?=\s*["']?([^"'\]\s]+)`)
	tagClassShape  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*(\.[_a-zA-Z-][_a-zA-Z0-9-]*)+$`)
	bareTagShape   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
)

type shape struct {
	confidence float64
	label      string
}

// shapeOf rates a selector by its weakest recognisable feature.
func shapeOf(selector string) shape {
	lower := strings.ToLower(selector)
	bare := stripArguments(selector)

	switch {
	case positionPseudo.MatchString(lower):
		return shape{positionConfidence, "position-based, very fragile"}
	case strings.Count(bare, ".") > maxClassSegments || len(strings.Fields(bare)) > maxTokens:
		return shape{fragileChainConfidence, "fragile chain"}
	case strings.Contains(lower, ":contains("):
		return shape{textContentConfidence, "text content match"}
	case strings.Contains(lower, "[data-testid="):
		return shape{dataTestIDConfidence, "data-testid attribute"}
	case strings.Contains(lower, "[role=") || strings.Contains(lower, "[aria-label="):
		return shape{ariaRoleConfidence, "role or aria-label attribute"}
	case strings.Contains(bare, "#"):
		return shape{cleanIDConfidence, "stable id"}
	case tagClassShape.MatchString(strings.TrimSpace(bare)):
		return shape{semanticClassConfidence, "semantic class"}
	default:
		return shape{defaultConfidence, "structural selector"}
	}
}

// GeneratedFragment returns the first #id, .class or id/class attribute value in
// selector that looks generated, or "" when there is none.
func GeneratedFragment(selector string) string {
	for _, m := range identFragment.FindAllStringSubmatch(stripArguments(selector), -1) {
		if stability.IsGeneratedIdentifier(m[2]) {
			return m[1] + m[2]
		}
	}
	for _, m := range attrIdentity.FindAllStringSubmatch(selector, -1) {
		if stability.IsGeneratedIdentifier(m[2]) {
			return "[" + m[1] + "=" + m[2] + "]"
		}
	}
	return ""
}

// InferTier classifies an externally supplied selector by its shape.
func InferTier(selector string) domain.Tier {
	lower := strings.ToLower(strings.TrimSpace(selector))
	bare := strings.TrimSpace(stripArguments(lower))

	switch {
	case lower == "":
		return domain.TierUnknown
	case strings.Contains(lower, "[data-testid="):
		return domain.TierDataAttribute
	case strings.Contains(lower, "[role=") || strings.Contains(lower, "[aria-label="):
		return domain.TierAriaRole
	case strings.Contains(lower, ":contains("):
		return domain.TierTextContent
	case len(strings.Fields(bare)) > 1:
		return domain.TierParentRelation
	case strings.HasPrefix(bare, "#"):
		return domain.TierCleanID
	case strings.Contains(bare, "."):
		return domain.TierSemanticClass
	case bareTagShape.MatchString(bare):
		return domain.TierTagFallback
	default:
		return domain.TierUnknown
	}
}

// stripArguments removes quoted strings and the contents of brackets and
// parentheses, keeping the delimiters.
func stripArguments(selector string) string {
	var b strings.Builder
	b.Grow(len(selector))

	depth := 0
	var quote rune
	escaped := false
	for _, r := range selector {
		switch {
		case escaped:
			escaped = false
			continue
		case r == '\\':
			escaped = true
			continue
		case quote != 0:
			if r == quote {
				quote = 0
			}
			continue
		case r == '"' || r == '\'':
			quote = r
			continue
		case r == '[' || r == '(':
			if depth == 0 {
				b.WriteRune(r)
			}
			depth++
			continue
		case r == ']' || r == ')':
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				b.WriteRune(r)
			}
			continue
		}
		if depth == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
