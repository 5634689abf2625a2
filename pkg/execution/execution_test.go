package execution

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluentassertions/pkg/config"
	"digital.vasic.fluentassertions/pkg/logging"
)

// spyT records what a Verification reports.
type spyT struct {
	errors   []string
	failNows int
	helpers  int
}

func (s *spyT) Helper() { s.helpers++ }

func (s *spyT) Errorf(format string, args ...any) {
	s.errors = append(s.errors, fmt.Sprintf(format, args...))
}

func (s *spyT) FailNow() { s.failNows++ }

func TestFormatReason(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"none", nil, ""},
		{"plain", []any{"it matters"}, " because it matters"},
		{"already prefixed", []any{"because it matters"}, " because it matters"},
		{"capitalised prefix", []any{"Because reasons"}, " Because reasons"},
		{"formatted", []any{"we want %d items", 3}, " because we want 3 items"},
		{"percent without args", []any{"100% sure"}, " because 100% sure"},
		{"whitespace", []any{"   "}, ""},
		{"trimmed", []any{"  spaced  "}, " because spaced"},
		{"non-string", []any{42}, " because 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReason(tt.args...))
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		subject  string
		reason   string
		args     []any
		want     string
	}{
		{
			"positional args",
			"Expected {0} but found {1}.", "", "",
			[]any{"a", 2},
			`Expected "a" but found 2.`,
		},
		{
			"reason and context fallback",
			"Expected {context:string} to be {0}{reason}.", "", " because x",
			[]any{"abc"},
			`Expected string to be "abc" because x.`,
		},
		{
			"named context",
			"Expected {context:string} to be empty.", "username", "",
			nil,
			"Expected username to be empty.",
		},
		{
			"out of range kept",
			"Value {3} here", "", "", []any{1},
			"Value {3} here",
		},
		{
			"unknown kept",
			"Keep {this} verbatim", "", "", nil,
			"Keep {this} verbatim",
		},
		{
			"unbalanced brace",
			"Broken {0", "", "", []any{1},
			"Broken {0",
		},
		{
			"argument braces are not expanded",
			"Found {0}", "", "", []any{"{1}"},
			`Found "{1}"`,
		},
		{
			"repeated argument",
			"{0} and {0}", "", "", []any{true},
			"true and true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.template, tt.subject, tt.reason, tt.args...))
		})
	}
}

func TestVerification_PassReportsNothing(t *testing.T) {
	spy := &spyT{}
	c := New(spy).ForCondition(true).FailWith("Expected {0}.", 1)

	assert.True(t, c.Succeeded())
	assert.Empty(t, spy.errors)
	assert.Zero(t, spy.failNows)
}

func TestVerification_FailReportsAndStops(t *testing.T) {
	spy := &spyT{}
	c := New(spy).
		BecauseOf("the %s is set", "limit").
		WithContext("count").
		ForCondition(false).
		FailWith("Expected {context:value} to be {0}{reason}, but found {1}.", 3, 4)

	assert.False(t, c.Succeeded())
	require.Len(t, spy.errors, 1)
	assert.Equal(t, "Expected count to be 3 because the limit is set, but found 4.", spy.errors[0])
	assert.Equal(t, 1, spy.failNows)
	assert.Positive(t, spy.helpers)
}

func TestVerification_ContinueMode(t *testing.T) {
	c := config.Default()
	c.FailureMode = config.FailContinue
	defer config.Set(c, nil)()

	spy := &spyT{}
	New(spy).ForCondition(false).FailWith("nope")

	assert.Len(t, spy.errors, 1)
	assert.Zero(t, spy.failNows)
}

func TestVerification_ChainShortCircuits(t *testing.T) {
	spy := &spyT{}
	v := New(spy)

	second := v.ForCondition(false).FailWith("first").
		Then().ForCondition(false).FailWith("second")

	assert.False(t, second.Succeeded())
	assert.Equal(t, []string{"first"}, spy.errors)
	assert.True(t, v.Failed())
}

func TestVerification_ThenAfterSuccess(t *testing.T) {
	spy := &spyT{}

	New(spy).ForCondition(true).FailWith("first").
		Then().ForCondition(false).FailWith("second")

	assert.Equal(t, []string{"second"}, spy.errors)
}

func TestVerification_Given(t *testing.T) {
	spy := &spyT{}
	v := New(spy).Given(func() bool { return false })

	c := v.ForCondition(false).FailWith("never")

	assert.False(t, c.Succeeded())
	assert.False(t, v.Failed())
	assert.Empty(t, spy.errors)
}

func TestVerification_NilReporterPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		fe, ok := r.(*FailedError)
		require.True(t, ok)
		assert.Equal(t, []string{`Expected "x".`}, fe.Failures)
		assert.Equal(t, `Expected "x".`, fe.Error())
	}()

	New(nil).ForCondition(false).FailWith("Expected {0}.", "x")
}

func TestVerification_LogsOutcomes(t *testing.T) {
	dir := t.TempDir()
	recPath := filepath.Join(dir, "assertions.jsonl")

	logger, err := logging.NewJSONLogger(logging.LoggerConfig{
		OutputPath:   filepath.Join(dir, "main.log"),
		AssertionLog: recPath,
	})
	require.NoError(t, err)
	defer config.Set(config.Default(), logger)()

	spy := &spyT{}
	New(spy).WithContext("pass").ForCondition(true).FailWith("ok")
	New(spy).WithContext("fail").ForCondition(false).FailWith("broken")
	require.NoError(t, logger.Close())

	rec := readRecords(t, recPath)
	require.Len(t, rec, 2)
	assert.True(t, rec[0].Passed)
	assert.Equal(t, "pass", rec[0].Subject)
	assert.False(t, rec[1].Passed)
	assert.Equal(t, "broken", rec[1].Message)
	assert.Contains(t, rec[1].Caller, "execution_test.go")
}

func TestScope_CollectsAndReports(t *testing.T) {
	spy := &spyT{}
	scope := NewScope(spy)

	New(scope).ForCondition(false).FailWith("first")
	New(scope).ForCondition(true).FailWith("fine")
	New(scope).ForCondition(false).FailWith("second")

	assert.True(t, scope.HasFailures())
	assert.Equal(t, []string{"first", "second"}, scope.Failures())
	assert.Empty(t, spy.errors)

	scope.Close()
	scope.Close()

	assert.Equal(t, []string{"first\nsecond"}, spy.errors)
	assert.Equal(t, 1, spy.failNows)
}

func TestScope_QuietWhenClean(t *testing.T) {
	spy := &spyT{}
	scope := NewScope(spy)
	New(scope).ForCondition(true).FailWith("fine")
	scope.Close()

	assert.Empty(t, spy.errors)
	assert.Zero(t, spy.failNows)
}

func TestScope_NilParentPanics(t *testing.T) {
	scope := NewScope(nil)
	New(scope).ForCondition(false).FailWith("lost")

	assert.PanicsWithError(t, "lost", scope.Close)
}

func TestScope_Discard(t *testing.T) {
	scope := NewScope(nil)
	New(scope).ForCondition(false).FailWith("expected failure")

	assert.Equal(t, []string{"expected failure"}, scope.Discard())
	assert.False(t, scope.HasFailures())
	assert.NotPanics(t, scope.Close)
}

func TestPanicOnFailure(t *testing.T) {
	r := PanicOnFailure()
	assert.NotPanics(t, r.Helper)
	assert.NotPanics(t, r.FailNow)
	assert.PanicsWithError(t, "bad 1", func() { r.Errorf("bad %d", 1) })
}

func TestMethodName(t *testing.T) {
	tests := []struct {
		fn   string
		want string
	}{
		{"(*StringAssertions).Be", "StringAssertions.Be"},
		{"(*NumericAssertions[...]).BeGreaterThan", "NumericAssertions.BeGreaterThan"},
		{"(*ErrorAssertions).WithMessage.func1", "ErrorAssertions.WithMessage"},
		{"(*ordering[go.shape.int]).be", "ordering.be"},
		{"equality.validate", "equality.validate"},
		{"Invoking", "Invoking"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, methodName(tt.fn), tt.fn)
	}
}

type recordingMetrics struct {
	names  []string
	passed []bool
}

func (m *recordingMetrics) RecordAssertion(name string, passed bool) {
	m.names = append(m.names, name)
	m.passed = append(m.passed, passed)
}

func TestSetMetrics(t *testing.T) {
	m := &recordingMetrics{}
	restore := SetMetrics(m)

	spy := &spyT{}
	New(spy).ForCondition(true).FailWith("ok")
	New(spy).ForCondition(false).FailWith("bad")
	restore()
	New(spy).ForCondition(false).FailWith("not recorded")

	assert.Equal(t, []bool{true, false}, m.passed)
	assert.Len(t, m.names, 2)

	_, record := currentMetrics()
	assert.False(t, record)

	defer SetMetrics(nil)()
	_, record = currentMetrics()
	assert.False(t, record)
}
