package assertion

import (
	"digital.vasic.fluentassertions/pkg/execution"
)

// BooleanAssertions holds assertions on a bool.
type BooleanAssertions struct {
	base
	Subject bool
}

// Bool starts assertions on b.
func Bool(t execution.TestingT, b bool) *BooleanAssertions {
	return &BooleanAssertions{base: base{t: t}, Subject: b}
}

// Should returns the assertions; it exists for readability.
func (a *BooleanAssertions) Should() *BooleanAssertions { return a }

// As names the subject in failure messages.
func (a *BooleanAssertions) As(name string) *BooleanAssertions {
	a.name = name
	return a
}

// BeTrue asserts that the subject is true.
func (a *BooleanAssertions) BeTrue(because ...any) AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.Be(true, because...)
}

// BeFalse asserts that the subject is false.
func (a *BooleanAssertions) BeFalse(because ...any) AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.Be(false, because...)
}

// Be asserts that the subject equals expected.
func (a *BooleanAssertions) Be(expected bool, because ...any) AndConstraint[*BooleanAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(a.Subject == expected).
		FailWith("Expected {context:boolean} to be {0}{reason}, but found {1}.", expected, a.Subject)
	return AndConstraint[*BooleanAssertions]{And: a}
}

// Imply asserts that the subject being true implies consequent.
func (a *BooleanAssertions) Imply(consequent bool, because ...any) AndConstraint[*BooleanAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!a.Subject || consequent).
		FailWith("Expected {context:antecedent} ({0}) to imply consequent ({1}){reason}, but it did not.",
			a.Subject, consequent)
	return AndConstraint[*BooleanAssertions]{And: a}
}
