package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/cleaner"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/hint"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/metrics"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
)

// Engine is the analysis surface the handlers need.
type Engine interface {
	Analyze(ctx context.Context, req resolver.Request) (*resolver.Result, error)
	Validate(selector, html string) (validator.Resolution, error)
	Score(html string, selectors []string) ([]domain.ScoredCandidate, error)
}

// Handler serves the selector engine over HTTP.
type Handler struct {
	engine  Engine
	hints   *hint.Decoder
	metrics *metrics.Metrics
	log     logger.Interface
}

// NewHandler creates a Handler.
func NewHandler(engine Engine, hints *hint.Decoder, m *metrics.Metrics, log logger.Interface) *Handler {
	return &Handler{
		engine:  engine,
		hints:   hints,
		metrics: m,
		log:     log,
	}
}

// Analyze handles POST /api/v1/injection-points.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	parsed, err := h.hints.Decode(req.Hint)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	start := time.Now()
	result, err := h.engine.Analyze(c.Request.Context(), resolver.Request{HTML: req.HTML, Hint: parsed})
	if err != nil {
		h.metrics.RecordError()
		if errors.Is(err, context.Canceled) {
			h.log.Debug("Analysis cancelled by client")
			return
		}
		h.log.Error("Analysis failed", "error", err)
		respondDocumentError(c, err)
		return
	}
	h.metrics.RecordAnalysis(string(result.State), time.Since(start))

	resp := AnalyzeResponse{
		State:          result.State,
		ResolvedBy:     result.ResolvedBy,
		MatchCount:     result.MatchCount,
		InjectionPoint: result.InjectionPoint,
		XPath:          result.XPath,
	}
	if result.NotFound != nil {
		resp.Reason = result.NotFound.Reason
		resp.Suggestions = result.NotFound.Suggestions
	}
	if c.Query("candidates") == "true" {
		resp.Candidates = result.Candidates
	}
	c.JSON(http.StatusOK, resp)
}

// Validate handles POST /api/v1/selectors/validate.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.engine.Validate(req.Selector, req.HTML)
	if err != nil {
		respondDocumentError(c, err)
		return
	}
	h.metrics.RecordValidation()

	c.JSON(http.StatusOK, ValidateResponse{
		Selector:       req.Selector,
		ExistsUniquely: res.Unique(),
		MatchCount:     res.Count,
		Descriptors:    res.Descriptors,
		Invalid:        res.Invalid,
	})
}

// Score handles POST /api/v1/selectors/score.
func (h *Handler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	results, err := h.engine.Score(req.HTML, req.Selectors)
	if err != nil {
		respondDocumentError(c, err)
		return
	}
	c.JSON(http.StatusOK, ScoreResponse{Results: results})
}

// Clean handles POST /api/v1/selectors/clean.
func (h *Handler) Clean(c *gin.Context) {
	var req CleanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	c.JSON(http.StatusOK, CleanResponse{Selector: req.Selector, Cleaned: cleaner.Clean(req.Selector)})
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
