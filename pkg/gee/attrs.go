package gee

import (
	"math"
	"reflect"
	"sort"
)

// StyleKey is the reserved AttributeBag key holding style properties.
const StyleKey = "style"

// Attrs is an attribute bag: property name to value. The StyleKey entry, if
// present, must be a Style (or another string-keyed mapping).
type Attrs map[string]any

// Style maps style property names to values.
type Style map[string]any

// asBag reports whether v is a plain key to value mapping.
func asBag(v any) (Attrs, bool) {
	switch m := v.(type) {
	case Attrs:
		return m, m != nil
	case map[string]any:
		return Attrs(m), m != nil
	case map[string]string:
		if m == nil {
			return nil, false
		}
		out := make(Attrs, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}
	return nil, false
}

func asStyle(v any) (Style, bool) {
	switch m := v.(type) {
	case Style:
		return m, true
	case map[string]any:
		return Style(m), true
	case Attrs:
		return Style(m), true
	case map[string]string:
		out := make(Style, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}
	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truthy mirrors the loose truthiness the untyped call form relies on:
// nil (typed or untyped), false, zero numbers, NaN and empty strings are
// false. Empty but non-nil slices and maps are true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String() != ""
	}
	return true
}
