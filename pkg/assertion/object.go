package assertion

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"digital.vasic.fluentassertions/pkg/execution"
	"digital.vasic.fluentassertions/pkg/formatting"
)

// ObjectAssertions holds assertions on an arbitrary value.
type ObjectAssertions struct {
	base
	Subject any
	options []cmp.Option
}

// Object starts assertions on v.
func Object(t execution.TestingT, v any) *ObjectAssertions {
	return &ObjectAssertions{base: base{t: t}, Subject: v}
}

// Should returns the assertions; it exists for readability.
func (a *ObjectAssertions) Should() *ObjectAssertions { return a }

// As names the subject in failure messages.
func (a *ObjectAssertions) As(name string) *ObjectAssertions {
	a.name = name
	return a
}

// Using adds go-cmp options for BeEquivalentTo, e.g.
// cmpopts.IgnoreFields or cmpopts.EquateEmpty.
func (a *ObjectAssertions) Using(opts ...cmp.Option) *ObjectAssertions {
	a.options = append(a.options, opts...)
	return a
}

func (a *ObjectAssertions) and() AndConstraint[*ObjectAssertions] {
	return AndConstraint[*ObjectAssertions]{And: a}
}

// isNil reports whether v is nil or a nil pointer, map, slice,
// channel, function or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// BeNil asserts that the subject is nil, including typed nils.
func (a *ObjectAssertions) BeNil(because ...any) AndConstraint[*ObjectAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(isNil(a.Subject)).
		FailWith("Expected {context:object} to be <nil>{reason}, but found {0}.", a.Subject)
	return a.and()
}

// NotBeNil asserts that the subject is not nil.
func (a *ObjectAssertions) NotBeNil(because ...any) AndConstraint[*ObjectAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!isNil(a.Subject)).
		FailWith("Expected {context:object} not to be <nil>{reason}.")
	return a.and()
}

// Be asserts equality as testify's ObjectsAreEqual defines it:
// reflect.DeepEqual, with []byte compared by content.
func (a *ObjectAssertions) Be(expected any, because ...any) AndConstraint[*ObjectAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(assert.ObjectsAreEqual(expected, a.Subject)).
		FailWith("Expected {context:object} to be {0}{reason}, but found {1}.", expected, a.Subject)
	return a.and()
}

// NotBe asserts inequality as testify's ObjectsAreEqual defines it.
func (a *ObjectAssertions) NotBe(unexpected any, because ...any) AndConstraint[*ObjectAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!assert.ObjectsAreEqual(unexpected, a.Subject)).
		FailWith("Did not expect {context:object} to be {0}{reason}.", unexpected)
	return a.and()
}

// BeEquivalentTo asserts structural equality with go-cmp. Unexported
// fields are compared; options added with Using apply. The failure
// message includes the diff.
func (a *ObjectAssertions) BeEquivalentTo(expected any, because ...any) AndConstraint[*ObjectAssertions] {
	a.helper()
	opts := append([]cmp.Option{cmp.Exporter(func(reflect.Type) bool { return true })}, a.options...)

	diff := cmp.Diff(expected, a.Subject, opts...)
	a.verify(because).
		ForCondition(diff == "").
		FailWith("Expected {context:object} to be equivalent to {0}{reason}, but found {1}.\nDiff (-expected +actual):\n{2}",
			expected, a.Subject, formatting.Raw(diff))
	return a.and()
}

// BeSameAs asserts that the subject is the same reference as
// expected.
func (a *ObjectAssertions) BeSameAs(expected any, because ...any) AndConstraint[*ObjectAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(sameReference(a.Subject, expected)).
		FailWith("Expected {context:object} to refer to {0}{reason}, but found {1}.", expected, a.Subject)
	return a.and()
}

// NotBeSameAs asserts that the subject is a different reference.
func (a *ObjectAssertions) NotBeSameAs(unexpected any, because ...any) AndConstraint[*ObjectAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!sameReference(a.Subject, unexpected)).
		FailWith("Did not expect {context:object} to refer to {0}{reason}.", unexpected)
	return a.and()
}

// BeOfType asserts the exact dynamic type of the subject. The
// subject is returned as Which.
func (a *ObjectAssertions) BeOfType(typ reflect.Type, because ...any) AndWhichConstraint[*ObjectAssertions, any] {
	a.helper()
	actual := reflect.TypeOf(a.Subject)
	a.verify(because).
		ForCondition(actual == typ).
		FailWith("Expected type of {context:object} to be {0}{reason}, but found {1}.",
			formatting.Raw(typeName(typ)), formatting.Raw(typeName(actual)))
	return AndWhichConstraint[*ObjectAssertions, any]{And: a, Which: a.Subject}
}

// BeAssignableTo asserts that the subject's type is assignable to
// typ, or implements it when typ is an interface.
func (a *ObjectAssertions) BeAssignableTo(typ reflect.Type, because ...any) AndWhichConstraint[*ObjectAssertions, any] {
	a.helper()
	actual := reflect.TypeOf(a.Subject)
	ok := actual != nil && typ != nil && actual.AssignableTo(typ)
	a.verify(because).
		ForCondition(ok).
		FailWith("Expected {context:object} to be assignable to {0}{reason}, but {1} is not.",
			formatting.Raw(typeName(typ)), formatting.Raw(typeName(actual)))
	return AndWhichConstraint[*ObjectAssertions, any]{And: a, Which: a.Subject}
}

func typeName(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}
	return typ.String()
}
