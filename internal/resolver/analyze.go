package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/scorer"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
)

const (
	reasonEmptyDocument = "no document supplied"
	reasonEmptyHint     = "no selector or text hint supplied"
	reasonNoMatch       = "no element matched the supplied selectors or text"
)

// Request is one analysis: a page and the oracle's hint about it.
type Request struct {
	HTML string
	Hint domain.Hint
}

// Result is the outcome of an analysis. Exactly one of InjectionPoint and
// NotFound is set.
type Result struct {
	State          State                    `json:"state"                     yaml:"state"`
	ResolvedBy     ResolvedBy               `json:"resolved_by,omitempty"     yaml:"resolved_by,omitempty"`
	MatchCount     int                      `json:"match_count"               yaml:"match_count"`
	InjectionPoint *domain.InjectionPoint   `json:"injection_point,omitempty" yaml:"injection_point,omitempty"`
	NotFound       *domain.NotFoundResult   `json:"not_found,omitempty"       yaml:"not_found,omitempty"`
	Candidates     []domain.ScoredCandidate `json:"candidates,omitempty"      yaml:"candidates,omitempty"`
	// XPath locates the resolved element for diagnostics
	XPath string `json:"xpath,omitempty" yaml:"xpath,omitempty"`
}

// resolution is the element a hint located.
type resolution struct {
	state    State
	by       ResolvedBy
	count    int
	target   *goquery.Selection
	original *domain.SelectorCandidate
}

// Analyze resolves req.Hint against req.HTML. NOT_FOUND and ambiguous outcomes
// are results, not errors; errors report an unusable document or cancellation.
func (e *Engine) Analyze(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	if req.Hint.NotFound {
		e.log.Debug("Oracle reported element not found", "reason", req.Hint.Reason)
		return notFound(req.Hint.Reason, req.Hint.Suggestions), nil
	}
	if strings.TrimSpace(req.HTML) == "" {
		return notFound(reasonEmptyDocument, req.Hint.Suggestions), nil
	}
	if req.Hint.IsEmpty() {
		return notFound(reasonEmptyHint, req.Hint.Suggestions), nil
	}

	doc, err := document.Parse(req.HTML, e.limits)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	res := e.resolve(doc, req.Hint)
	if res.state == StateNotFound {
		reason := req.Hint.Reason
		if reason == "" {
			reason = reasonNoMatch
		}
		e.log.Debug("Hint did not resolve", "primary_selector", req.Hint.PrimarySelector)
		return notFound(reason, req.Hint.Suggestions), nil
	}

	if res.state == StateResolvedAmbiguous {
		e.log.Warn("Hint resolved to several elements, using the first",
			"resolved_by", string(res.by),
			"match_count", res.count,
		)
	}

	target := res.target.Get(0)
	el := document.NewElement(res.target)

	pool := e.candidatePool(res.original, req.Hint, el)
	ranked, err := e.rank(ctx, doc, target, pool)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	point := e.assemble(doc, target, res, el, ranked)
	e.log.Debug("Analysis complete",
		"state", string(res.state),
		"selector", point.Selector,
		"confidence", point.Confidence,
		"alternatives", len(point.AlternativeSelectors),
	)

	return &Result{
		State:          res.state,
		ResolvedBy:     res.by,
		MatchCount:     res.count,
		InjectionPoint: point,
		Candidates:     scoredList(ranked),
		XPath:          el.XPath,
	}, nil
}

// resolve walks the hint: primary selector, alternative selectors, then text.
func (e *Engine) resolve(doc *document.Document, hint domain.Hint) resolution {
	type attempt struct {
		selector string
		by       ResolvedBy
		source   domain.CandidateSource
	}
	attempts := make([]attempt, 0, len(hint.AlternativeSelectors)+1)
	if s := strings.TrimSpace(hint.PrimarySelector); s != "" {
		attempts = append(attempts, attempt{s, ResolvedByPrimary, domain.SourceOracle})
	}
	for _, alt := range hint.AlternativeSelectors {
		if s := strings.TrimSpace(alt); s != "" {
			attempts = append(attempts, attempt{s, ResolvedByAlternative, domain.SourceOracleAlternative})
		}
	}

	for _, a := range attempts {
		compiled, err := validator.Compile(a.selector)
		if err != nil {
			e.log.Debug("Skipping unusable hint selector", "selector", a.selector, "error", err)
			continue
		}
		matches := doc.Match(compiled)
		if matches.Length() == 0 {
			continue
		}
		return resolution{
			state:  stateFor(matches.Length()),
			by:     a.by,
			count:  matches.Length(),
			target: matches.First(),
			original: &domain.SelectorCandidate{
				Selector: a.selector,
				Tier:     scorer.InferTier(a.selector),
				Source:   a.source,
			},
		}
	}

	if text := hint.SearchText(); text != "" {
		matches := doc.FindText(text)
		if matches.Length() > 0 {
			return resolution{
				state:  stateFor(matches.Length()),
				by:     ResolvedByText,
				count:  matches.Length(),
				target: matches.First(),
			}
		}
	}

	return resolution{state: StateNotFound}
}

func stateFor(count int) State {
	if count == 1 {
		return StateResolvedUnique
	}
	return StateResolvedAmbiguous
}

func notFound(reason string, suggestions []string) *Result {
	if suggestions == nil {
		suggestions = []string{}
	}
	return &Result{
		State: StateNotFound,
		NotFound: &domain.NotFoundResult{
			Reason:      reason,
			Suggestions: suggestions,
		},
	}
}
