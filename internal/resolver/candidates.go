package resolver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/cleaner"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/scorer"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
	"golang.org/x/net/html"
)

// ranked is a scored candidate with the facts needed to order and select it.
type ranked struct {
	domain.ScoredCandidate
	// order is the candidate's position in the pool
	order int
	// targets is true when the candidate's matches include the resolved element
	targets bool
}

// candidatePool lists the resolving selector, the hint's selectors and the
// synthesized ones, deduplicated in that order and capped.
func (e *Engine) candidatePool(original *domain.SelectorCandidate, hint domain.Hint, el document.Element) []domain.SelectorCandidate {
	pool := make([]domain.SelectorCandidate, 0, e.maxCandidates)
	seen := make(map[string]bool)
	add := func(c domain.SelectorCandidate) {
		c.Selector = strings.TrimSpace(c.Selector)
		if c.Selector == "" || seen[c.Selector] || len(pool) >= e.maxCandidates {
			return
		}
		seen[c.Selector] = true
		pool = append(pool, c)
	}

	if original != nil {
		add(*original)
	}
	if s := strings.TrimSpace(hint.PrimarySelector); s != "" {
		add(domain.SelectorCandidate{Selector: s, Tier: scorer.InferTier(s), Source: domain.SourceOracle})
	}
	for _, alt := range hint.AlternativeSelectors {
		s := strings.TrimSpace(alt)
		add(domain.SelectorCandidate{Selector: s, Tier: scorer.InferTier(s), Source: domain.SourceOracleAlternative})
	}
	for _, c := range e.synth.Synthesize(el) {
		add(c)
	}
	return pool
}

// rank scores every candidate against doc and orders them: working first, then
// by confidence, tier and pool order.
func (e *Engine) rank(
	ctx context.Context,
	doc *document.Document,
	target *html.Node,
	pool []domain.SelectorCandidate,
) ([]ranked, error) {
	out := make([]ranked, 0, len(pool))
	for i, c := range pool {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, ranked{
			ScoredCandidate: domain.ScoredCandidate{
				SelectorCandidate: c,
				Verdict:           scorer.ScoreIn(doc, c.Selector),
			},
			order:   i,
			targets: matchesTarget(doc, c.Selector, target),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Verdict.Works != b.Verdict.Works {
			return a.Verdict.Works
		}
		if a.Verdict.Confidence != b.Verdict.Confidence {
			return a.Verdict.Confidence > b.Verdict.Confidence
		}
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.order < b.order
	})

	e.log.Debug("Scored selector candidates", "candidates", len(out), "working", countWorking(out))
	return out, nil
}

// assemble picks the primary selector and its fallbacks and builds the InjectionPoint.
func (e *Engine) assemble(
	doc *document.Document,
	target *html.Node,
	res resolution,
	el document.Element,
	candidates []ranked,
) *domain.InjectionPoint {
	selector, confidence, tier, basis, chosen := e.pickPrimary(doc, target, res, candidates)

	if res.state == StateResolvedAmbiguous {
		confidence = min(confidence, scorer.AmbiguousConfidenceCap)
	}

	alternatives := make([]string, 0, e.maxAlternatives)
	seen := map[string]bool{selector: true}
	for i, c := range candidates {
		if len(alternatives) >= e.maxAlternatives {
			break
		}
		if i == chosen || !c.targets || c.Verdict.MatchCount == 0 {
			continue
		}
		cleaned := cleaner.Clean(c.Selector)
		if cleaned == "" || seen[cleaned] || !matchesTarget(doc, cleaned, target) {
			continue
		}
		seen[cleaned] = true
		alternatives = append(alternatives, cleaned)
	}

	return &domain.InjectionPoint{
		ID:                   e.newID(),
		Selector:             selector,
		Confidence:           confidence,
		AlternativeSelectors: alternatives,
		Reasoning:            reasoning(res, basis, candidates),
		OriginalText:         el.Text,
		Strategy:             tier.String(),
		Timestamp:            e.now().UTC(),
	}
}

// pickPrimary returns the best working candidate whose cleaned form still
// uniquely matches the target. Without one it keeps the original candidate, or
// the best-ranked one, at its depressed confidence. chosen is the index of the
// candidate used, or -1.
func (e *Engine) pickPrimary(
	doc *document.Document,
	target *html.Node,
	res resolution,
	candidates []ranked,
) (selector string, confidence float64, tier domain.Tier, basis string, chosen int) {
	for i, c := range candidates {
		if !c.Verdict.Works || !c.targets {
			continue
		}
		cleaned := cleaner.Clean(c.Selector)
		if cleaned == "" {
			continue
		}
		verdict, strategy := c.Verdict, c.Tier
		if cleaned != c.Selector {
			verdict = scorer.ScoreIn(doc, cleaned)
			strategy = scorer.InferTier(cleaned)
		}
		if !verdict.Works || !matchesTarget(doc, cleaned, target) {
			continue
		}
		return cleaned, verdict.Confidence, strategy, verdict.Reason, i
	}

	fallback := fallbackIndex(res, candidates)
	if fallback < 0 {
		// Nothing was scored; describe the element by its tag alone.
		el := document.NewElement(res.target)
		verdict := scorer.ScoreIn(doc, el.Tag)
		return el.Tag, min(verdict.Confidence, scorer.AmbiguousConfidenceCap),
			domain.TierTagFallback, "no candidate selectors: " + verdict.Reason, -1
	}

	c := candidates[fallback]
	cleaned := cleaner.Clean(c.Selector)
	if cleaned == "" {
		cleaned = c.Selector
	}
	verdict := scorer.ScoreIn(doc, cleaned)
	confidence = min(c.Verdict.Confidence, verdict.Confidence)
	if !verdict.Works || !matchesTarget(doc, cleaned, target) {
		confidence = min(confidence, scorer.AmbiguousConfidenceCap)
	}
	return cleaned, confidence, c.Tier, "no candidate works after cleaning, kept best effort: " + c.Verdict.Reason, fallback
}

// fallbackIndex prefers the selector that resolved the hint, then the best-ranked
// candidate that matches the target.
func fallbackIndex(res resolution, candidates []ranked) int {
	if res.original != nil {
		for i, c := range candidates {
			if c.Selector == res.original.Selector {
				return i
			}
		}
	}
	for i, c := range candidates {
		if c.targets {
			return i
		}
	}
	return -1
}

// matchesTarget reports whether selector matches target among its matches.
func matchesTarget(doc *document.Document, selector string, target *html.Node) bool {
	compiled, err := validator.Compile(selector)
	if err != nil {
		return false
	}
	for _, n := range doc.Match(compiled).Nodes {
		if n == target {
			return true
		}
	}
	return false
}

func reasoning(res resolution, basis string, candidates []ranked) string {
	var b strings.Builder
	switch res.by {
	case ResolvedByPrimary:
		b.WriteString("resolved by the primary selector")
	case ResolvedByAlternative:
		b.WriteString("resolved by an alternative selector")
	case ResolvedByText:
		b.WriteString("resolved by text search")
	}
	if res.state == StateResolvedAmbiguous {
		fmt.Fprintf(&b, "; ambiguous: %d matches, first match in document order used, confidence capped at %.1f",
			res.count, scorer.AmbiguousConfidenceCap)
	}
	fmt.Fprintf(&b, "; %s; %d of %d candidates uniquely matched", basis, countWorking(candidates), len(candidates))
	return b.String()
}

func countWorking(candidates []ranked) int {
	n := 0
	for _, c := range candidates {
		if c.Verdict.Works {
			n++
		}
	}
	return n
}

func scoredList(candidates []ranked) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ScoredCandidate)
	}
	return out
}
