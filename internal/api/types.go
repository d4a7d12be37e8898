package api

import (
	"encoding/json"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
)

// AnalyzeRequest is the body of POST /api/v1/injection-points.
type AnalyzeRequest struct {
	HTML string `json:"html"`
	// Hint is the oracle's raw answer, validated against the hint schema
	Hint json.RawMessage `json:"hint"`
}

// AnalyzeResponse carries either an InjectionPoint or the NOT_FOUND reason.
type AnalyzeResponse struct {
	State          resolver.State           `json:"state"`
	ResolvedBy     resolver.ResolvedBy      `json:"resolved_by,omitempty"`
	MatchCount     int                      `json:"match_count,omitempty"`
	InjectionPoint *domain.InjectionPoint   `json:"injection_point,omitempty"`
	Reason         string                   `json:"reason,omitempty"`
	Suggestions    []string                 `json:"suggestions,omitempty"`
	XPath          string                   `json:"xpath,omitempty"`
	Candidates     []domain.ScoredCandidate `json:"candidates,omitempty"`
}

// ValidateRequest is the body of POST /api/v1/selectors/validate.
type ValidateRequest struct {
	HTML     string `json:"html"`
	Selector string `json:"selector" binding:"required"`
}

// ValidateResponse reports whether a stored selector still resolves.
type ValidateResponse struct {
	Selector       string   `json:"selector"`
	ExistsUniquely bool     `json:"exists_uniquely"`
	MatchCount     int      `json:"match_count"`
	Descriptors    []string `json:"descriptors"`
	Invalid        bool     `json:"invalid,omitempty"`
}

// ScoreRequest is the body of POST /api/v1/selectors/score.
type ScoreRequest struct {
	HTML      string   `json:"html"`
	Selectors []string `json:"selectors" binding:"required,min=1"`
}

// ScoreResponse lists verdicts in request order.
type ScoreResponse struct {
	Results []domain.ScoredCandidate `json:"results"`
}

// CleanRequest is the body of POST /api/v1/selectors/clean.
type CleanRequest struct {
	Selector string `json:"selector"`
}

// CleanResponse pairs a selector with its cleaned form.
type CleanResponse struct {
	Selector string `json:"selector"`
	Cleaned  string `json:"cleaned"`
}
