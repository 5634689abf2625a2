package assertion

import (
	"digital.vasic.fluentassertions/pkg/execution"
)

// AndConstraint continues a chain on the same assertions.
type AndConstraint[T any] struct {
	And T
}

// AndWhichConstraint continues a chain and exposes a value
// produced by the assertion, such as a matched element.
type AndWhichConstraint[T, W any] struct {
	And   T
	Which W
}

// base is shared by every assertions type.
type base struct {
	t    execution.TestingT
	name string
}

func (b *base) helper() {
	if b.t != nil {
		b.t.Helper()
	}
}

func (b *base) verify(because []any) *execution.Verification {
	return execution.New(b.t).BecauseOf(because...).WithContext(b.name)
}
