package assertion

import (
	"slices"

	"digital.vasic.fluentassertions/pkg/formatting"
)

// ordering implements the checks shared by comparable and numeric
// subjects on top of a three-way comparison.
type ordering[T any] struct {
	base
	subject T
	compare func(a, b T) int
}

func (o *ordering[T]) equal(a, b T) bool {
	return sameReference(a, b) || o.compare(a, b) == 0
}

func (o *ordering[T]) be(expected T, because []any) {
	o.verify(because).
		ForCondition(o.equal(o.subject, expected)).
		FailWith("Expected {context:value} to be {0}{reason}, but found {1}.", expected, o.subject)
}

func (o *ordering[T]) notBe(unexpected T, because []any) {
	o.verify(because).
		ForCondition(!o.equal(o.subject, unexpected)).
		FailWith("Did not expect {context:value} to be {0}{reason}.", unexpected)
}

func (o *ordering[T]) greaterThan(expected T, because []any) {
	o.verify(because).
		ForCondition(o.compare(o.subject, expected) > 0).
		FailWith("Expected {context:value} to be greater than {0}{reason}, but found {1}.", expected, o.subject)
}

func (o *ordering[T]) greaterThanOrEqualTo(expected T, because []any) {
	o.verify(because).
		ForCondition(o.compare(o.subject, expected) >= 0).
		FailWith("Expected {context:value} to be greater than or equal to {0}{reason}, but found {1}.", expected, o.subject)
}

func (o *ordering[T]) lessThan(expected T, because []any) {
	o.verify(because).
		ForCondition(o.compare(o.subject, expected) < 0).
		FailWith("Expected {context:value} to be less than {0}{reason}, but found {1}.", expected, o.subject)
}

func (o *ordering[T]) lessThanOrEqualTo(expected T, because []any) {
	o.verify(because).
		ForCondition(o.compare(o.subject, expected) <= 0).
		FailWith("Expected {context:value} to be less than or equal to {0}{reason}, but found {1}.", expected, o.subject)
}

func (o *ordering[T]) inRange(low, high T) bool {
	return o.compare(o.subject, low) >= 0 && o.compare(o.subject, high) <= 0
}

func (o *ordering[T]) beInRange(low, high T, because []any) {
	o.verify(because).
		ForCondition(o.inRange(low, high)).
		FailWith("Expected {context:value} to be between {0} and {1}{reason}, but found {2}.", low, high, o.subject)
}

func (o *ordering[T]) notBeInRange(low, high T, because []any) {
	o.verify(because).
		ForCondition(!o.inRange(low, high)).
		FailWith("Expected {context:value} to not be between {0} and {1}{reason}, but found {2}.", low, high, o.subject)
}

func (o *ordering[T]) beOneOf(values []T, because []any) {
	found := slices.ContainsFunc(values, func(v T) bool {
		return o.equal(o.subject, v)
	})
	o.verify(because).
		ForCondition(found).
		FailWith("Expected {context:value} to be one of {0}{reason}, but found {1}.",
			formatting.Raw(formatting.Join(values)), o.subject)
}
