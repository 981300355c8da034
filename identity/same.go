package identity

import "reflect"

// Same reports whether a and b are the same value by identity: Go equality
// for comparable values, backing array and length for slices, and pointer
// identity for maps and funcs. Structs and arrays holding values that cannot
// be compared are never the same. It never compares contents deeply and does
// not allocate.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	switch ta.Kind() {
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	switch ta.Kind() {
	case reflect.Struct, reflect.Array:
		// interface fields may hold values that cannot be compared
		if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
			return false
		}
	}
	return a == b
}
