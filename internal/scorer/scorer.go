// Package scorer turns a selector and a document into a reliability verdict.
package scorer

import (
	"fmt"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
)

// Score parses markup with the default limits and scores selector against it.
// The error reports only document preconditions.
func Score(selector, markup string) (domain.Verdict, error) {
	doc, err := document.Parse(markup, document.DefaultLimits())
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("score %q: %w", selector, err)
	}
	return ScoreIn(doc, selector), nil
}

// ScoreIn scores selector against an already parsed document.
func ScoreIn(doc *document.Document, selector string) domain.Verdict {
	res := validator.ResolveIn(doc, selector)
	if res.Count == 0 {
		reason := "no match"
		if res.Invalid {
			reason = "no match: invalid selector"
		}
		return domain.Verdict{Reason: reason}
	}

	s := shapeOf(selector)
	verdict := domain.Verdict{
		Matches:    true,
		MatchCount: res.Count,
	}

	if res.Count > 1 {
		verdict.Confidence = min(s.confidence, AmbiguousConfidenceCap)
		verdict.Reason = fmt.Sprintf("ambiguous: %d matches", res.Count)
		return verdict
	}

	if fragment := GeneratedFragment(selector); fragment != "" {
		verdict.Confidence = min(s.confidence, GeneratedConfidenceCap)
		verdict.Reason = "generated/unstable pattern: " + fragment
		return verdict
	}

	verdict.Works = true
	verdict.Confidence = s.confidence
	verdict.Reason = "unique match: " + s.label
	return verdict
}
