package execution

import (
	"runtime"
	"strconv"
	"strings"

	"digital.vasic.fluentassertions/pkg/config"
	"digital.vasic.fluentassertions/pkg/logging"
)

// modulePrefix identifies frames inside this module when looking up
// the caller of an assertion.
const modulePrefix = "digital.vasic.fluentassertions/"

const assertionPrefix = modulePrefix + "pkg/assertion."

// Verification evaluates one chain of related checks. Once a check
// fails, the remaining checks of the chain are skipped.
type Verification struct {
	t         TestingT
	reason    string
	subject   string
	condition bool
	failed    bool
	skipped   bool
	mode      string
	logger    logging.Logger
}

// New starts a verification reporting to t. A nil t reports by
// panicking, as PanicOnFailure does.
func New(t TestingT) *Verification {
	if t == nil {
		t = PanicOnFailure()
	}
	return &Verification{
		t:         t,
		condition: true,
		mode:      config.Current().FailureMode,
		logger:    config.CurrentLogger(),
	}
}

// BecauseOf sets the reason clause. See FormatReason.
func (v *Verification) BecauseOf(because ...any) *Verification {
	v.reason = FormatReason(because...)
	return v
}

// WithContext names the subject for {context:...} placeholders.
func (v *Verification) WithContext(subject string) *Verification {
	v.subject = subject
	return v
}

// ForCondition sets the condition checked by the next FailWith.
func (v *Verification) ForCondition(condition bool) *Verification {
	v.condition = condition
	return v
}

// Given skips the remaining checks when fn is false, without
// reporting anything. It is a no-op after a failure.
func (v *Verification) Given(fn func() bool) *Verification {
	if !v.failed && !v.skipped && !fn() {
		v.skipped = true
	}
	return v
}

// Failed reports whether a check of this chain has failed.
func (v *Verification) Failed() bool {
	return v.failed
}

// FailWith reports the rendered template when the current
// condition is false. Nothing is reported if an earlier check of
// the chain already failed.
func (v *Verification) FailWith(template string, args ...any) *Continuation {
	v.t.Helper()

	if v.failed || v.skipped {
		return &Continuation{v: v}
	}

	m, record := currentMetrics()

	if v.condition {
		if record {
			_, name := origin()
			m.RecordAssertion(name, true)
		}
		v.logger.LogAssertion(logging.AssertionLog{
			Subject: v.subject,
			Passed:  true,
		})
		return &Continuation{v: v, succeeded: true}
	}

	v.failed = true
	message := Render(template, v.subject, v.reason, args...)

	location, name := origin()
	if record {
		m.RecordAssertion(name, false)
	}
	v.logger.LogAssertion(logging.AssertionLog{
		Subject: v.subject,
		Passed:  false,
		Message: message,
		Caller:  location,
	})

	v.t.Errorf("%s", message)
	if v.mode != config.FailContinue {
		v.t.FailNow()
	}

	return &Continuation{v: v}
}

// Continuation is the result of one FailWith call.
type Continuation struct {
	v         *Verification
	succeeded bool
}

// Succeeded reports whether the check passed.
func (c *Continuation) Succeeded() bool {
	return c.succeeded
}

// Then returns the verification for a follow-up check. The
// follow-up is skipped when any earlier check failed.
func (c *Continuation) Then() *Verification {
	c.v.condition = true
	return c.v
}

// origin returns the location of the code that called into this
// module and the name of the outermost assertion method on the
// way, e.g. "StringAssertions.Be".
func origin() (location, name string) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, modulePrefix) ||
			strings.HasSuffix(frame.File, "_test.go") {
			return frame.File + ":" + strconv.Itoa(frame.Line), name
		}
		if method, ok := strings.CutPrefix(frame.Function, assertionPrefix); ok {
			name = methodName(method)
		}
		if !more {
			return "", name
		}
	}
}

// methodName turns "(*NumericAssertions[...]).Be.func1" into
// "NumericAssertions.Be".
func methodName(fn string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range fn {
		switch {
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth > 0, r == '(', r == ')', r == '*':
		default:
			sb.WriteRune(r)
		}
	}
	parts := strings.SplitN(sb.String(), ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}
