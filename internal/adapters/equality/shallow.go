package equality

import "reflect"

// Shallow reports whether a and b are identical.
//
// Scalars compare with ==, so NaN never equals itself. Numbers of different
// kinds are identical when they hold the same value. Maps, pointers,
// channels and funcs compare by reference and slices by backing array and
// length. Structs and arrays are identical when every field or element is.
// Other values of different dynamic types are never identical.
func Shallow(a, b any) bool {
	return shallowValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func shallowValue(a, b reflect.Value) bool {
	a, b = unwrap(a), unwrap(b)
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if isNumber(a) && isNumber(b) {
		return sameNumber(a, b)
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Array:
		for i := range a.Len() {
			if !shallowValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range a.NumField() {
			if !shallowValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
