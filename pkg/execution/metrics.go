package execution

import (
	"sync"

	"digital.vasic.fluentassertions/pkg/metrics"
)

var (
	metricsMu sync.RWMutex
	recorder  metrics.AssertionMetrics = metrics.NoopMetrics{}
)

// SetMetrics makes every verification record its outcome in m. A
// nil m restores the default no-op recorder. The returned function
// restores the previous recorder.
func SetMetrics(m metrics.AssertionMetrics) (restore func()) {
	if m == nil {
		m = metrics.NoopMetrics{}
	}
	metricsMu.Lock()
	prev := recorder
	recorder = m
	metricsMu.Unlock()

	return func() {
		metricsMu.Lock()
		recorder = prev
		metricsMu.Unlock()
	}
}

func currentMetrics() (metrics.AssertionMetrics, bool) {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	_, noop := recorder.(metrics.NoopMetrics)
	return recorder, !noop
}
