package assertion

import (
	"cmp"
	"reflect"

	"digital.vasic.fluentassertions/pkg/execution"
)

// Numeric is the set of types accepted by Number.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NumericAssertions holds assertions on a number.
type NumericAssertions[T Numeric] struct {
	ordering[T]
	Subject T
}

// Number starts assertions on n. Comparisons follow cmp.Compare, so
// NaN equals NaN and orders before every other value.
func Number[T Numeric](t execution.TestingT, n T) *NumericAssertions[T] {
	return &NumericAssertions[T]{
		ordering: ordering[T]{base: base{t: t}, subject: n, compare: cmp.Compare[T]},
		Subject:  n,
	}
}

// Should returns the assertions; it exists for readability.
func (a *NumericAssertions[T]) Should() *NumericAssertions[T] { return a }

// As names the subject in failure messages.
func (a *NumericAssertions[T]) As(name string) *NumericAssertions[T] {
	a.name = name
	return a
}

func (a *NumericAssertions[T]) and() AndConstraint[*NumericAssertions[T]] {
	return AndConstraint[*NumericAssertions[T]]{And: a}
}

// Be asserts that the subject equals expected.
func (a *NumericAssertions[T]) Be(expected T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.be(expected, because)
	return a.and()
}

// NotBe asserts that the subject differs from unexpected.
func (a *NumericAssertions[T]) NotBe(unexpected T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.notBe(unexpected, because)
	return a.and()
}

// BeGreaterThan asserts subject > expected.
func (a *NumericAssertions[T]) BeGreaterThan(expected T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.greaterThan(expected, because)
	return a.and()
}

// BeGreaterThanOrEqualTo asserts subject >= expected.
func (a *NumericAssertions[T]) BeGreaterThanOrEqualTo(expected T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.greaterThanOrEqualTo(expected, because)
	return a.and()
}

// BeLessThan asserts subject < expected.
func (a *NumericAssertions[T]) BeLessThan(expected T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.lessThan(expected, because)
	return a.and()
}

// BeLessThanOrEqualTo asserts subject <= expected.
func (a *NumericAssertions[T]) BeLessThanOrEqualTo(expected T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.lessThanOrEqualTo(expected, because)
	return a.and()
}

// BeInRange asserts low <= subject <= high.
func (a *NumericAssertions[T]) BeInRange(low, high T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.beInRange(low, high, because)
	return a.and()
}

// NotBeInRange asserts that the subject lies outside [low, high].
func (a *NumericAssertions[T]) NotBeInRange(low, high T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.notBeInRange(low, high, because)
	return a.and()
}

// BeOneOf asserts that the subject equals one of values.
func (a *NumericAssertions[T]) BeOneOf(values []T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	a.beOneOf(values, because)
	return a.and()
}

// BePositive asserts subject > 0.
func (a *NumericAssertions[T]) BePositive(because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	var zero T
	a.verify(because).
		ForCondition(a.Subject > zero).
		FailWith("Expected {context:value} to be positive{reason}, but found {0}.", a.Subject)
	return a.and()
}

// BeNegative asserts subject < 0.
func (a *NumericAssertions[T]) BeNegative(because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	var zero T
	a.verify(because).
		ForCondition(a.Subject < zero).
		FailWith("Expected {context:value} to be negative{reason}, but found {0}.", a.Subject)
	return a.and()
}

// BeApproximately asserts |subject - expected| <= precision. NaN
// never approximates anything; equal infinities always do.
func (a *NumericAssertions[T]) BeApproximately(expected, precision T, because ...any) AndConstraint[*NumericAssertions[T]] {
	a.helper()
	diff, ok := approximates(a.Subject, expected, precision)
	a.verify(because).
		ForCondition(ok).
		FailWith("Expected {context:value} to approximate {0} +/- {1}{reason}, but {2} differed by {3}.",
			expected, precision, a.Subject, diff)
	return a.and()
}

// approximates reports whether actual lies within precision of
// expected, along with the distance between them. Signed integer
// distances are computed in uint64 so they cannot wrap.
func approximates[T Numeric](actual, expected, precision T) (any, bool) {
	var zero T
	if actual == expected {
		return zero, precision >= zero
	}

	hi, lo := actual, expected
	if hi < lo {
		hi, lo = lo, hi
	}

	switch reflect.ValueOf(actual).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		diff := uint64(int64(hi)) - uint64(int64(lo))
		return diff, precision >= zero && diff <= uint64(int64(precision))
	}

	diff := hi - lo
	return diff, diff <= precision
}
