package assertion

import (
	"digital.vasic.fluentassertions/pkg/execution"
)

// failures runs fn against a collecting scope and returns the
// messages it reported.
func failures(fn func(t execution.TestingT)) []string {
	scope := execution.NewScope(nil)
	fn(scope)
	return scope.Discard()
}

type version struct {
	major, minor int
}

type point struct {
	X, Y int
}

type notFoundError struct {
	key string
}

func (e *notFoundError) Error() string { return "not found: " + e.key }

type wrappingError struct {
	msg string
	err error
}

func (e *wrappingError) Error() string { return e.msg }

func (e *wrappingError) Unwrap() error { return e.err }

type coder interface {
	error
	Code() int
}

type codeError struct {
	code int
}

func (e codeError) Error() string { return "code error" }

func (e codeError) Code() int { return e.code }
