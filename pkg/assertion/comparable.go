package assertion

import (
	"digital.vasic.fluentassertions/pkg/execution"
)

// ComparableAssertions holds assertions on a subject ordered by a
// caller-supplied three-way comparison.
type ComparableAssertions[T any] struct {
	ordering[T]
	Subject T
}

// Comparable starts assertions on subject using compare, which
// returns a negative number, zero or a positive number when its
// first argument is less than, equal to or greater than the second.
// Be and NotBe treat identical references as equal without calling
// compare.
func Comparable[T any](t execution.TestingT, subject T, compare func(a, b T) int) *ComparableAssertions[T] {
	return &ComparableAssertions[T]{
		ordering: ordering[T]{base: base{t: t}, subject: subject, compare: compare},
		Subject:  subject,
	}
}

// Should returns the assertions; it exists for readability.
func (a *ComparableAssertions[T]) Should() *ComparableAssertions[T] { return a }

// As names the subject in failure messages.
func (a *ComparableAssertions[T]) As(name string) *ComparableAssertions[T] {
	a.name = name
	return a
}

func (a *ComparableAssertions[T]) and() AndConstraint[*ComparableAssertions[T]] {
	return AndConstraint[*ComparableAssertions[T]]{And: a}
}

// Be asserts that the subject compares equal to expected.
func (a *ComparableAssertions[T]) Be(expected T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.be(expected, because)
	return a.and()
}

// NotBe asserts that the subject does not compare equal to
// unexpected.
func (a *ComparableAssertions[T]) NotBe(unexpected T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.notBe(unexpected, because)
	return a.and()
}

// BeGreaterThan asserts subject > expected.
func (a *ComparableAssertions[T]) BeGreaterThan(expected T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.greaterThan(expected, because)
	return a.and()
}

// BeGreaterThanOrEqualTo asserts subject >= expected.
func (a *ComparableAssertions[T]) BeGreaterThanOrEqualTo(expected T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.greaterThanOrEqualTo(expected, because)
	return a.and()
}

// BeLessThan asserts subject < expected.
func (a *ComparableAssertions[T]) BeLessThan(expected T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.lessThan(expected, because)
	return a.and()
}

// BeLessThanOrEqualTo asserts subject <= expected.
func (a *ComparableAssertions[T]) BeLessThanOrEqualTo(expected T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.lessThanOrEqualTo(expected, because)
	return a.and()
}

// BeInRange asserts low <= subject <= high.
func (a *ComparableAssertions[T]) BeInRange(low, high T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.beInRange(low, high, because)
	return a.and()
}

// NotBeInRange asserts that the subject lies outside [low, high].
func (a *ComparableAssertions[T]) NotBeInRange(low, high T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.notBeInRange(low, high, because)
	return a.and()
}

// BeOneOf asserts that the subject compares equal to one of values.
func (a *ComparableAssertions[T]) BeOneOf(values []T, because ...any) AndConstraint[*ComparableAssertions[T]] {
	a.helper()
	a.beOneOf(values, because)
	return a.and()
}
