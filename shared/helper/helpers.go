package helper

import (
	"fmt"
	"reflect"
)

// ErrUnexpectedType is returned when a stored value is not of the expected type.
var ErrUnexpectedType = fmt.Errorf("unexpected type")

// GetTypedValueOf asserts v to T. A nil v yields T's zero value so that nil
// results of interface types survive a round trip through any.
func GetTypedValueOf[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T, want %T", ErrUnexpectedType, v, zero)
	}
	return val, nil
}

// IsNil reports whether v is nil or a typed nil pointer, map, slice, func,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
