// Package metrics counts assertion outcomes.
package metrics

// AssertionMetrics records the outcome of evaluated assertions.
type AssertionMetrics interface {
	// RecordAssertion records one evaluation of the named assertion,
	// e.g. "StringAssertions.Be".
	RecordAssertion(name string, passed bool)
}

// NoopMetrics discards every record. It is the default.
type NoopMetrics struct{}

func (NoopMetrics) RecordAssertion(_ string, _ bool) {}
