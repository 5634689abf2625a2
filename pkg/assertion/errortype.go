package assertion

import (
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// targetType returns the type pointed to by target, which must be a
// non-nil pointer to an interface or to a type implementing error,
// as errors.As requires.
func targetType(target any) reflect.Type {
	if target == nil {
		panic("assertion: target cannot be nil")
	}
	val := reflect.ValueOf(target)
	typ := val.Type()
	if typ.Kind() != reflect.Pointer || val.IsNil() {
		panic("assertion: target must be a non-nil pointer")
	}
	elem := typ.Elem()
	if elem.Kind() != reflect.Interface && !elem.Implements(errorType) {
		panic("assertion: *target must be interface or implement error")
	}
	return elem
}

// matchesType reports whether err's dynamic type is typ (exact) or
// is assignable to typ. Wrapped errors are not inspected.
func matchesType(err error, typ reflect.Type, exact bool) bool {
	if err == nil {
		return false
	}
	actual := reflect.TypeOf(err)
	if exact {
		return actual == typ
	}
	return actual.AssignableTo(typ)
}

// assignTarget stores err in *target.
func assignTarget(target any, err error) {
	reflect.ValueOf(target).Elem().Set(reflect.ValueOf(err))
}

// innerError returns the error wrapped by err: the result of
// Unwrap() error, or the first error of Unwrap() []error.
func innerError(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		if errs := u.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return nil
}
