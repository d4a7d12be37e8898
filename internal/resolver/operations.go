package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/scorer"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
)

// ExistsUniquely reports whether selector matches exactly one element of html.
// It is the re-validation entry point for selectors stored from earlier analyses
// and never fails: unparseable input reports false.
func (e *Engine) ExistsUniquely(selector, html string) bool {
	doc, err := document.Parse(html, e.limits)
	if err != nil {
		e.log.Debug("Re-validation skipped unusable document", "error", err)
		return false
	}
	return validator.ExistsUniquelyIn(doc, selector)
}

// Validate resolves selector against html and describes what it matched.
func (e *Engine) Validate(selector, html string) (validator.Resolution, error) {
	doc, err := document.Parse(html, e.limits)
	if err != nil {
		return validator.Resolution{}, fmt.Errorf("validate: %w", err)
	}
	return validator.ResolveIn(doc, selector), nil
}

// Score rates each selector against one parse of html, preserving input order.
// At most the engine's candidate cap is accepted per call.
func (e *Engine) Score(html string, selectors []string) ([]domain.ScoredCandidate, error) {
	if len(selectors) > e.maxCandidates {
		return nil, fmt.Errorf("score: %d selectors, limit %d: %w", len(selectors), e.maxCandidates, ErrTooManySelectors)
	}

	doc, err := document.Parse(html, e.limits)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}

	out := make([]domain.ScoredCandidate, 0, len(selectors))
	for _, s := range selectors {
		out = append(out, domain.ScoredCandidate{
			SelectorCandidate: domain.SelectorCandidate{
				Selector: s,
				Tier:     scorer.InferTier(s),
				Source:   domain.SourceOracle,
			},
			Verdict: scorer.ScoreIn(doc, s),
		})
	}
	return out, nil
}

// Synthesize describes the first element selector matches in html and returns
// the selectors synthesized for it, ranked.
func (e *Engine) Synthesize(ctx context.Context, html, selector string) (document.Element, []domain.ScoredCandidate, error) {
	doc, err := document.Parse(html, e.limits)
	if err != nil {
		return document.Element{}, nil, fmt.Errorf("synthesize: %w", err)
	}

	compiled, err := validator.Compile(selector)
	if err != nil {
		return document.Element{}, nil, fmt.Errorf("synthesize: %w", err)
	}
	matches := doc.Match(compiled)
	if matches.Length() == 0 {
		return document.Element{}, nil, fmt.Errorf("synthesize %q: %w", strings.TrimSpace(selector), ErrNoMatch)
	}

	el := document.NewElement(matches.First())
	ranked, err := e.rank(ctx, doc, matches.Get(0), e.synth.Synthesize(el))
	if err != nil {
		return document.Element{}, nil, fmt.Errorf("synthesize: %w", err)
	}
	return el, scoredList(ranked), nil
}
