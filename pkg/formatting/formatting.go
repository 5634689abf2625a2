// Package formatting renders values for assertion failure messages.
// Strings are quoted, errors show their dynamic type and message,
// and composite values are dumped with go-spew using sorted map
// keys and without pointer addresses.
package formatting

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"

	"digital.vasic.fluentassertions/pkg/config"
)

// Formatter renders a value of a registered type.
type Formatter func(value any) string

// Raw is rendered verbatim, without quoting.
type Raw string

// truncationMarker is appended to renderings cut at the maximum
// length.
const truncationMarker = "…"

// Registry maps concrete types to custom formatters. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	formatters map[reflect.Type]Formatter
}

// NewRegistry creates a Registry with no custom formatters.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[reflect.Type]Formatter)}
}

// Register adds a formatter for typ. Returns an error if the type
// already has one.
func (r *Registry) Register(typ reflect.Type, fn Formatter) error {
	if typ == nil {
		return fmt.Errorf("formatter type must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[typ]; exists {
		return fmt.Errorf("formatter already registered: %s", typ)
	}

	r.formatters[typ] = fn
	return nil
}

// Unregister removes the formatter for typ, if any.
func (r *Registry) Unregister(typ reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.formatters, typ)
}

// Lookup returns the formatter registered for typ.
func (r *Registry) Lookup(typ reflect.Type) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.formatters[typ]
	return fn, ok
}

var defaultRegistry = NewRegistry()

// Register adds a formatter to the process-wide registry used by
// ToString.
func Register(typ reflect.Type, fn Formatter) error {
	return defaultRegistry.Register(typ, fn)
}

// Unregister removes a formatter from the process-wide registry.
func Unregister(typ reflect.Type) {
	defaultRegistry.Unregister(typ)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
	MaxDepth:                10,
}

// ToString renders v for a failure message, truncated to the
// configured maximum length. Raw message parts are never truncated.
func ToString(v any) string {
	if raw, ok := v.(Raw); ok {
		return string(raw)
	}
	return Truncate(render(v), config.Current().MaxValueLength)
}

// Truncate cuts s to at most limit runes, marking the cut. A
// non-positive limit disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + truncationMarker
}

func render(v any) string {
	if v == nil {
		return "<nil>"
	}

	if fn, ok := defaultRegistry.Lookup(reflect.TypeOf(v)); ok {
		return fn(v)
	}

	switch val := v.(type) {
	case Raw:
		return string(val)
	case string:
		return strconv.Quote(val)
	case error:
		if isNilPointer(val) {
			return fmt.Sprintf("%T(<nil>)", val)
		}
		return fmt.Sprintf("%T: %s", val, strconv.Quote(val.Error()))
	case time.Time:
		return "<" + val.Format(time.RFC3339Nano) + ">"
	case time.Duration:
		return val.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128, uintptr:
		return fmt.Sprint(val)
	case fmt.Stringer:
		if isNilPointer(val) {
			return fmt.Sprintf("%T(<nil>)", val)
		}
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return fmt.Sprintf("%T(<nil>)", v)
		}
	}

	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf("%T", v)
	case reflect.String:
		return fmt.Sprintf("%T(%s)", v, strconv.Quote(rv.String()))
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%T(%v)", v, v)
	}

	return strings.TrimSuffix(dumper.Sdump(v), "\n")
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Join renders each value and joins them with ", " inside braces,
// e.g. {1, 2, 3}.
func Join[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = render(v)
	}
	return Truncate("{"+strings.Join(parts, ", ")+"}", config.Current().MaxValueLength)
}
