package fp

import (
	"reflect"
)

// IsNil reports whether v is nil or a typed nil of a nillable kind
// (pointer, interface, map, slice, channel, func).
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
