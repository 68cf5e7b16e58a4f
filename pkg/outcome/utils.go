package outcome

import (
	"reflect"
)

// IsNil reports whether i is a nil interface or an interface holding a nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// isNilPayload reports whether v would be an absent payload. Only nil
// pointers and nil interfaces count; nil slices and maps are valid values.
func isNilPayload[T any](v T) bool {
	return IsNil(any(v))
}
