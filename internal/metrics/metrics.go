// Package metrics provides analysis counters for the HTTP surface.
package metrics

import (
	"sync"
	"time"
)

// Metrics counts analyses by outcome. It is safe for concurrent use.
type Metrics struct {
	// byState counts completed analyses keyed by resolution state.
	byState map[string]int64
	// errorCount is the number of analyses that failed with an error.
	errorCount int64
	// validations is the number of selector re-validations.
	validations int64
	// lastAnalysisTime is the time of the last completed analysis.
	lastAnalysisTime time.Time
	// analysisDuration is the total time spent analysing.
	analysisDuration time.Duration
	// startTime is when collection began.
	startTime time.Time
	mu        sync.Mutex
	now       func() time.Time
}

// Stats is a point-in-time copy of the counters.
type Stats struct {
	Analyses         int64            `json:"analyses"`
	ByState          map[string]int64 `json:"by_state"`
	Errors           int64            `json:"errors"`
	Validations      int64            `json:"validations"`
	LastAnalysisTime *time.Time       `json:"last_analysis_time,omitempty"`
	AverageDuration  string           `json:"average_duration"`
	Uptime           string           `json:"uptime"`
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return newMetrics(time.Now)
}

func newMetrics(now func() time.Time) *Metrics {
	return &Metrics{
		byState:   make(map[string]int64),
		startTime: now(),
		now:       now,
	}
}

// GetStartTime returns the time when collection began.
func (m *Metrics) GetStartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}

// RecordAnalysis counts a completed analysis that ended in state.
func (m *Metrics) RecordAnalysis(state string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byState[state]++
	m.analysisDuration += elapsed
	m.lastAnalysisTime = m.now()
}

// RecordError counts an analysis that returned an error.
func (m *Metrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount++
}

// RecordValidation counts a selector re-validation.
func (m *Metrics) RecordValidation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validations++
}

// GetStateCount returns the number of analyses that ended in state.
func (m *Metrics) GetStateCount(state string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byState[state]
}

// GetErrorCount returns the number of failed analyses.
func (m *Metrics) GetErrorCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorCount
}

// Snapshot copies the counters.
func (m *Metrics) Snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{
		ByState:     make(map[string]int64, len(m.byState)),
		Errors:      m.errorCount,
		Validations: m.validations,
		Uptime:      m.now().Sub(m.startTime).Round(time.Second).String(),
	}
	for state, n := range m.byState {
		stats.ByState[state] = n
		stats.Analyses += n
	}

	var average time.Duration
	if stats.Analyses > 0 {
		average = m.analysisDuration / time.Duration(stats.Analyses)
		last := m.lastAnalysisTime
		stats.LastAnalysisTime = &last
	}
	stats.AverageDuration = average.String()
	return stats
}

// ResetMetrics resets all counters and restarts the uptime clock.
func (m *Metrics) ResetMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byState = make(map[string]int64)
	m.errorCount = 0
	m.validations = 0
	m.lastAnalysisTime = time.Time{}
	m.analysisDuration = 0
	m.startTime = m.now()
}
