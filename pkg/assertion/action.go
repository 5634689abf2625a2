package assertion

import (
	"fmt"

	"digital.vasic.fluentassertions/pkg/execution"
	"digital.vasic.fluentassertions/pkg/formatting"
)

// PanicError wraps a panic value that is not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ActionAssertions holds assertions on the outcome of an action.
// The action runs once, on the first assertion.
type ActionAssertions struct {
	base
	action func() error

	invoked bool
	err     error
}

// Invoking starts assertions on an action reporting failure by
// returning an error or by panicking.
func Invoking(t execution.TestingT, action func() error) *ActionAssertions {
	return &ActionAssertions{base: base{t: t}, action: action}
}

// InvokingFunc starts assertions on an action that can only fail
// by panicking.
func InvokingFunc(t execution.TestingT, action func()) *ActionAssertions {
	return Invoking(t, func() error {
		action()
		return nil
	})
}

// Should returns the assertions; it exists for readability.
func (a *ActionAssertions) Should() *ActionAssertions { return a }

// As names the action in failure messages.
func (a *ActionAssertions) As(name string) *ActionAssertions {
	a.name = name
	return a
}

// Err runs the action if needed and returns its error, or the
// recovered panic.
func (a *ActionAssertions) Err() error {
	if !a.invoked {
		a.invoked = true
		a.err = run(a.action)
	}
	return a.err
}

func run(action func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = &PanicError{Value: r}
		}
	}()
	return action()
}

func (a *ActionAssertions) errorAssertions(failed bool) *ErrorAssertions {
	e := newErrorAssertions(a.base, a.Err())
	e.broken = failed
	return e
}

// Throw asserts that the action returned an error or panicked, and
// continues the chain on that error.
func (a *ActionAssertions) Throw(because ...any) *ErrorAssertions {
	a.helper()
	v := a.verify(because)
	v.ForCondition(a.Err() != nil).
		FailWith("Expected an error to be thrown{reason}, but no error was thrown.")
	return a.errorAssertions(v.Failed())
}

// ThrowOfType asserts that the error is assignable to the type
// target points to and stores it in target. target follows the
// errors.As convention, but only the top-level error is matched.
func (a *ActionAssertions) ThrowOfType(target any, because ...any) *ErrorAssertions {
	a.helper()
	return a.throw(target, false, because)
}

// ThrowExactly is ThrowOfType requiring the exact dynamic type.
func (a *ActionAssertions) ThrowExactly(target any, because ...any) *ErrorAssertions {
	a.helper()
	return a.throw(target, true, because)
}

func (a *ActionAssertions) throw(target any, exact bool, because []any) *ErrorAssertions {
	typ := targetType(target)
	err := a.Err()
	name := formatting.Raw(typ.String())

	v := a.verify(because)
	v.ForCondition(err != nil).
		FailWith("Expected a {0} to be thrown{reason}, but no error was thrown.", name).
		Then().
		ForCondition(matchesType(err, typ, exact)).
		FailWith("Expected a {0} to be thrown{reason}, but found {1}.", name, err)

	if !v.Failed() {
		assignTarget(target, err)
	}
	return a.errorAssertions(v.Failed())
}

// NotThrow asserts that the action neither returned an error nor
// panicked.
func (a *ActionAssertions) NotThrow(because ...any) AndConstraint[*ActionAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(a.Err() == nil).
		FailWith("Did not expect any error{reason}, but found {0}.", a.Err())
	return AndConstraint[*ActionAssertions]{And: a}
}

// NotThrowOfType asserts that the action did not fail with an
// error assignable to the type target points to. target is not
// modified.
func (a *ActionAssertions) NotThrowOfType(target any, because ...any) AndConstraint[*ActionAssertions] {
	a.helper()
	typ := targetType(target)
	a.verify(because).
		ForCondition(!matchesType(a.Err(), typ, false)).
		FailWith("Did not expect {0}{reason}, but found {1}.", formatting.Raw(typ.String()), a.Err())
	return AndConstraint[*ActionAssertions]{And: a}
}

