// Package execution implements the verification protocol shared by
// every assertion: a condition, a message template, and an optional
// reason clause, reported through a testing.TB-like reporter only
// when the condition is false.
//
//	execution.New(t).
//		BecauseOf("the cache was primed").
//		WithContext("hits").
//		ForCondition(hits > 0).
//		FailWith("Expected {context:value} to be positive{reason}, but found {0}.", hits)
//
// Templates understand {0}..{n} for formatted arguments, {reason}
// for the reason clause and {context:fallback} for the subject
// name. Failures from several assertions can be gathered with a
// Scope and reported together.
package execution
