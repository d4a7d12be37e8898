package metrics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.NewMetrics()
	assert.NotNil(t, m)
	assert.False(t, m.GetStartTime().IsZero())

	stats := m.Snapshot()
	assert.Zero(t, stats.Analyses)
	assert.Empty(t, stats.ByState)
	assert.Nil(t, stats.LastAnalysisTime)
	assert.Equal(t, "0s", stats.AverageDuration)
}

func TestRecordAnalysis(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now := start
	m := metrics.NewWithClock(func() time.Time { return now })

	now = start.Add(time.Minute)
	m.RecordAnalysis("RESOLVED_UNIQUE", 20*time.Millisecond)
	m.RecordAnalysis("RESOLVED_UNIQUE", 40*time.Millisecond)
	m.RecordAnalysis("NOT_FOUND", 30*time.Millisecond)
	m.RecordError()
	m.RecordValidation()

	assert.Equal(t, int64(2), m.GetStateCount("RESOLVED_UNIQUE"))
	assert.Equal(t, int64(1), m.GetStateCount("NOT_FOUND"))
	assert.Zero(t, m.GetStateCount("RESOLVED_AMBIGUOUS"))
	assert.Equal(t, int64(1), m.GetErrorCount())

	stats := m.Snapshot()
	assert.Equal(t, int64(3), stats.Analyses)
	assert.Equal(t, int64(1), stats.Errors)
	assert.Equal(t, int64(1), stats.Validations)
	assert.Equal(t, "30ms", stats.AverageDuration)
	assert.Equal(t, "1m0s", stats.Uptime)
	require.NotNil(t, stats.LastAnalysisTime)
	assert.Equal(t, now, *stats.LastAnalysisTime)
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	m := metrics.NewMetrics()
	m.RecordAnalysis("NOT_FOUND", time.Millisecond)

	stats := m.Snapshot()
	stats.ByState["NOT_FOUND"] = 99
	assert.Equal(t, int64(1), m.GetStateCount("NOT_FOUND"))
}

func TestResetMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.NewMetrics()
	m.RecordAnalysis("RESOLVED_UNIQUE", time.Millisecond)
	m.RecordError()

	m.ResetMetrics()

	stats := m.Snapshot()
	assert.Zero(t, stats.Analyses)
	assert.Zero(t, stats.Errors)
	assert.Nil(t, stats.LastAnalysisTime)
}

func TestRecordAnalysisConcurrently(t *testing.T) {
	t.Parallel()

	m := metrics.NewMetrics()
	const workers = 50

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordAnalysis("RESOLVED_UNIQUE", time.Millisecond)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers), m.GetStateCount("RESOLVED_UNIQUE"))
}
