package metrics

import "time"

// NewWithClock exposes a Metrics with a fixed clock to tests.
func NewWithClock(now func() time.Time) *Metrics {
	return newMetrics(now)
}
