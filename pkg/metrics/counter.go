package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const (
	resultPassed = "passed"
	resultFailed = "failed"
)

const (
	labelAssertion = "assertion"
	labelResult    = "result"
)

// Counter counts assertion outcomes in a fluent_assertions_total
// counter vector held on its own registry. It is safe for concurrent
// use. Describe and Collect let a host register a Counter on another
// registry as well.
type Counter struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	total := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fluent_assertions_total",
			Help: "Assertions evaluated, by assertion and result.",
		},
		[]string{labelAssertion, labelResult},
	)
	registry := prometheus.NewRegistry()
	registry.MustRegister(total)
	return &Counter{registry: registry, total: total}
}

func (c *Counter) RecordAssertion(name string, passed bool) {
	result := resultFailed
	if passed {
		result = resultPassed
	}
	c.total.WithLabelValues(name, result).Inc()
}

// Passed returns how often the named assertion passed.
func (c *Counter) Passed(name string) int {
	return c.sum(func(assertion, result string) bool {
		return assertion == name && result == resultPassed
	})
}

// Failed returns how often the named assertion failed.
func (c *Counter) Failed(name string) int {
	return c.sum(func(assertion, result string) bool {
		return assertion == name && result == resultFailed
	})
}

// Total returns the number of recorded evaluations.
func (c *Counter) Total() int {
	return c.sum(func(string, string) bool { return true })
}

// Reset clears every count.
func (c *Counter) Reset() {
	c.total.Reset()
}

func (c *Counter) Describe(ch chan<- *prometheus.Desc) {
	c.total.Describe(ch)
}

func (c *Counter) Collect(ch chan<- prometheus.Metric) {
	c.total.Collect(ch)
}

// WriteText writes the counts in the Prometheus text exposition
// format, sorted by assertion name and result. Nothing is written
// before the first assertion is recorded.
func (c *Counter) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func (c *Counter) sum(match func(assertion, result string) bool) int {
	families, err := c.registry.Gather()
	if err != nil {
		return 0
	}
	total := 0
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if match(labelValue(m, labelAssertion), labelValue(m, labelResult)) {
				total += int(m.GetCounter().GetValue())
			}
		}
	}
	return total
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}
