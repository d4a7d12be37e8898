package stability

import (
	"sort"
	"strings"
)

// Classification explains how an identifier was classified.
type Classification struct {
	// Stable is true only for a stable shape with no generated match
	Stable bool
	// Generated is true when any generated rule matched
	Generated bool
	// Rule is the name of the deciding rule, empty when nothing matched
	Rule string
	// Rationale is the deciding rule's explanation
	Rationale string
}

// IsGeneratedIdentifier reports whether value matches any generated-identifier rule.
// Surrounding whitespace is ignored, as in Classify.
func IsGeneratedIdentifier(value string) bool {
	_, ok := matchGenerated(strings.TrimSpace(value))
	return ok
}

// IsStableClassName reports whether value has a hand-authored shape and matches
// no generated rule. Mixed evidence is treated as unstable.
func IsStableClassName(value string) bool {
	return Classify(value).Stable
}

// Classify runs both catalogs against value.
func Classify(value string) Classification {
	value = strings.TrimSpace(value)
	if value == "" {
		return Classification{Rationale: "empty identifier"}
	}

	if rule, ok := matchGenerated(value); ok {
		return Classification{
			Generated: true,
			Rule:      rule.Name,
			Rationale: rule.Rationale,
		}
	}

	if rule, ok := matchShape(value); ok {
		return Classification{
			Stable:    true,
			Rule:      rule.Name,
			Rationale: rule.Rationale,
		}
	}

	return Classification{Rationale: "no recognised naming convention"}
}

// RankStable returns the stable class names in classes, most stable first.
// Ties keep the original order.
func RankStable(classes []string) []string {
	type ranked struct {
		name   string
		weight int
	}

	seen := make(map[string]bool, len(classes))
	candidates := make([]ranked, 0, len(classes))
	for _, class := range classes {
		if seen[class] || IsGeneratedIdentifier(class) {
			continue
		}
		rule, ok := matchShape(class)
		if !ok {
			continue
		}
		seen[class] = true
		candidates = append(candidates, ranked{name: class, weight: rule.weight})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	result := make([]string, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.name)
	}
	return result
}

func matchGenerated(value string) (Rule, bool) {
	for _, rule := range generatedRules {
		if rule.Pattern.MatchString(value) {
			return rule, true
		}
	}
	return Rule{}, false
}

// matchShape returns the highest-weight stable shape matching value.
func matchShape(value string) (Rule, bool) {
	var best Rule
	found := false
	for _, rule := range stableShapes {
		if rule.Pattern.MatchString(value) && (!found || rule.weight > best.weight) {
			best = rule
			found = true
		}
	}
	return best, found
}
