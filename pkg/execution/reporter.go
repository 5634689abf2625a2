package execution

import (
	"fmt"
	"strings"
	"sync"

	"digital.vasic.fluentassertions/pkg/config"
)

// TestingT is the subset of testing.TB used to report failures.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// FailedError carries the messages of failed assertions when they
// are raised as a panic instead of through a test.
type FailedError struct {
	Failures []string
}

// Error joins every failure message on its own line.
func (e *FailedError) Error() string {
	return strings.Join(e.Failures, "\n")
}

type panicReporter struct{}

// PanicOnFailure returns a reporter that panics with a *FailedError
// on the first failure. It lets assertions run outside of go test.
func PanicOnFailure() TestingT {
	return panicReporter{}
}

func (panicReporter) Helper() {}

func (panicReporter) Errorf(format string, args ...any) {
	panic(&FailedError{Failures: []string{fmt.Sprintf(format, args...)}})
}

func (panicReporter) FailNow() {}

// Scope collects failures instead of reporting them one at a time.
// Assertions given a Scope keep evaluating after a failure; Close
// reports everything gathered to the parent. A Scope is safe for
// concurrent use.
type Scope struct {
	parent TestingT

	mu       sync.Mutex
	failures []string
	closed   bool
}

// NewScope creates a Scope reporting to parent on Close. A nil
// parent makes Close panic with a *FailedError instead.
func NewScope(parent TestingT) *Scope {
	return &Scope{parent: parent}
}

// Helper forwards to the parent reporter.
func (s *Scope) Helper() {
	if s.parent != nil {
		s.parent.Helper()
	}
}

// Errorf records a failure.
func (s *Scope) Errorf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, fmt.Sprintf(format, args...))
}

// FailNow is a no-op: a Scope defers failing until Close.
func (s *Scope) FailNow() {}

// Failures returns a copy of the messages recorded so far.
func (s *Scope) Failures() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.failures))
	copy(out, s.failures)
	return out
}

// HasFailures reports whether any failure was recorded.
func (s *Scope) HasFailures() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.failures) > 0
}

// Discard drops every recorded failure and returns them.
func (s *Scope) Discard() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.failures
	s.failures = nil
	return out
}

// Close reports the collected failures as a single message. It is
// safe to call more than once; only the first call reports.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed || len(s.failures) == 0 {
		s.closed = true
		s.mu.Unlock()
		return
	}
	s.closed = true
	failures := make([]string, len(s.failures))
	copy(failures, s.failures)
	s.mu.Unlock()

	if s.parent == nil {
		panic(&FailedError{Failures: failures})
	}

	s.parent.Helper()
	s.parent.Errorf("%s", strings.Join(failures, "\n"))
	if config.Current().FailureMode == config.FailFatal {
		s.parent.FailNow()
	}
}
