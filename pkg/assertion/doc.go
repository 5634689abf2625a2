// Package assertion provides fluent, chainable assertions for Go
// tests. Each constructor wraps a subject and a reporter (usually
// the *testing.T); the returned value exposes comparison methods
// that report a descriptive failure when violated and return a
// constraint for further chaining.
//
//	assertion.String(t, name).Should().StartWith("Dr. ").And.HaveLength(12)
//	assertion.Number(t, count).Should().BeInRange(1, 10)
//	assertion.Invoking(t, func() error { return svc.Close() }).
//		Should().Throw().
//		WithMessage("close: already closed").
//		And.WithInnerError()
//
// Every assertion method accepts an optional reason: a format
// string followed by its arguments, rendered as "because ..." in
// the failure message.
//
// Go has no exceptions. An action "throws" when it returns a non-nil
// error or panics; the inner error is the one returned by Unwrap.
package assertion
