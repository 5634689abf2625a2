package assertion

import (
	"errors"
	"reflect"
	"strings"

	"digital.vasic.fluentassertions/pkg/execution"
	"digital.vasic.fluentassertions/pkg/formatting"
)

// ErrorAssertions holds assertions on an error, usually one thrown
// by an action. Once an assertion in the chain fails, the following
// ones are skipped so a single root cause is reported.
type ErrorAssertions struct {
	base
	Subject error

	// And continues the chain on the same error.
	And *ErrorAssertions

	broken bool
}

// Error starts assertions on err.
func Error(t execution.TestingT, err error) *ErrorAssertions {
	return newErrorAssertions(base{t: t}, err)
}

func newErrorAssertions(b base, err error) *ErrorAssertions {
	a := &ErrorAssertions{base: b, Subject: err}
	a.And = a
	return a
}

// Should returns the assertions; it exists for readability.
func (a *ErrorAssertions) Should() *ErrorAssertions { return a }

// As names the subject in failure messages.
func (a *ErrorAssertions) As(name string) *ErrorAssertions {
	a.name = name
	return a
}

// Which returns the error under test.
func (a *ErrorAssertions) Which() error { return a.Subject }

// check runs one verification unless the chain already failed.
func (a *ErrorAssertions) check(because []any, fn func(v *execution.Verification)) *ErrorAssertions {
	if a.broken {
		return a
	}
	v := a.verify(because)
	fn(v)
	if v.Failed() {
		a.broken = true
	}
	return a
}

// noError reports a missing error and reports whether one was
// missing.
func (a *ErrorAssertions) noError(v *execution.Verification, expectation string, args ...any) bool {
	if a.Subject != nil {
		return false
	}
	v.ForCondition(false).FailWith("Expected "+expectation+"{reason}, but no error was thrown.", args...)
	return true
}

// BeNil asserts that no error occurred.
func (a *ErrorAssertions) BeNil(because ...any) *ErrorAssertions {
	a.helper()
	return a.check(because, func(v *execution.Verification) {
		v.ForCondition(a.Subject == nil).
			FailWith("Did not expect any error{reason}, but found {0}.", a.Subject)
	})
}

// NotBeNil asserts that an error occurred.
func (a *ErrorAssertions) NotBeNil(because ...any) *ErrorAssertions {
	a.helper()
	return a.check(because, func(v *execution.Verification) {
		if !a.noError(v, "an error") {
			v.ForCondition(true).FailWith("")
		}
	})
}

// WithMessage asserts that the error message equals expected. On
// failure the message names the first differing index.
func (a *ErrorAssertions) WithMessage(expected string, because ...any) *ErrorAssertions {
	a.helper()
	return a.check(because, func(v *execution.Verification) {
		if a.noError(v, "error with message {0}", expected) {
			return
		}
		equality{label: "error message", verb: "to be"}.validate(v, a.Subject.Error(), expected)
	})
}

// WithMessageContaining asserts that the error message contains
// substr.
func (a *ErrorAssertions) WithMessageContaining(substr string, because ...any) *ErrorAssertions {
	a.helper()
	return a.check(because, func(v *execution.Verification) {
		if a.noError(v, "an error") {
			return
		}
		v.ForCondition(strings.Contains(a.Subject.Error(), substr)).
			FailWith("Expected error message to contain {0}{reason}, but found {1}.", substr, a.Subject.Error())
	})
}

// WithMessageMatching asserts that the error message matches a
// wildcard pattern ('*' any text, '?' one rune).
func (a *ErrorAssertions) WithMessageMatching(pattern string, because ...any) *ErrorAssertions {
	a.helper()
	return a.check(because, func(v *execution.Verification) {
		if a.noError(v, "an error") {
			return
		}
		v.ForCondition(matchWildcard(a.Subject.Error(), pattern, false)).
			FailWith("Expected error message to match {0}{reason}, but {1} does not.", pattern, a.Subject.Error())
	})
}

// Wrap asserts that target is in the error's chain, as errors.Is
// defines it.
func (a *ErrorAssertions) Wrap(target error, because ...any) *ErrorAssertions {
	a.helper()
	return a.check(because, func(v *execution.Verification) {
		if a.noError(v, "an error") {
			return
		}
		v.ForCondition(errors.Is(a.Subject, target)).
			FailWith("Expected error to wrap {0}{reason}, but found {1}.", target, a.Subject)
	})
}

// Where asserts that predicate holds for the error. description
// explains the predicate in the failure message.
func (a *ErrorAssertions) Where(predicate func(err error) bool, description string, because ...any) *ErrorAssertions {
	a.helper()
	return a.check(because, func(v *execution.Verification) {
		if a.noError(v, "an error") {
			return
		}
		v.ForCondition(predicate(a.Subject)).
			FailWith("Expected error where {0}{reason}, but the condition was not met by {1}.",
				formatting.Raw(description), a.Subject)
	})
}

// inner descends to the wrapped error. The returned assertions
// are already broken when the descent fails.
func (a *ErrorAssertions) inner(because []any, target any, exact bool) *ErrorAssertions {
	var typ reflect.Type
	if target != nil {
		typ = targetType(target)
	}

	expectation := "an inner error"
	var args []any
	if typ != nil {
		expectation = "inner {0}"
		args = []any{formatting.Raw(typ.String())}
	}

	var wrapped error
	a.check(because, func(v *execution.Verification) {
		if a.noError(v, expectation, args...) {
			return
		}
		wrapped = innerError(a.Subject)
		if wrapped == nil {
			v.ForCondition(false).
				FailWith("Expected "+expectation+"{reason}, but the thrown error has no inner error.", args...)
			return
		}
		if typ == nil {
			v.ForCondition(true).FailWith("")
			return
		}
		ok := matchesType(wrapped, typ, exact)
		v.ForCondition(ok).
			FailWith("Expected {0}{reason}, but found {1}.", formatting.Raw("inner "+typ.String()), wrapped)
		if ok {
			assignTarget(target, wrapped)
		}
	})

	next := newErrorAssertions(a.base, wrapped)
	next.broken = a.broken
	return next
}

// WithInnerError asserts that the error wraps another error and
// continues the chain on the wrapped error.
func (a *ErrorAssertions) WithInnerError(because ...any) *ErrorAssertions {
	a.helper()
	return a.inner(because, nil, false)
}

// WithInnerErrorOfType asserts that the wrapped error is assignable
// to the type target points to, stores it in target, and continues
// the chain on it. target follows the errors.As convention.
func (a *ErrorAssertions) WithInnerErrorOfType(target any, because ...any) *ErrorAssertions {
	a.helper()
	return a.inner(because, target, false)
}

// WithInnerErrorExactly is WithInnerErrorOfType requiring the exact
// dynamic type.
func (a *ErrorAssertions) WithInnerErrorExactly(target any, because ...any) *ErrorAssertions {
	a.helper()
	return a.inner(because, target, true)
}
