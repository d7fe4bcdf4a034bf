package equality

import (
	"math"
	"reflect"
	"time"
)

var timeType = reflect.TypeFor[time.Time]()

// Deep reports whether a and b are structurally equal.
//
// Numbers compare by value regardless of their Go kind and NaN equals NaN.
// Maps need identical key sets; sequences compare element by element, with a
// nil slice equal to an empty one. Structs need identical types. Funcs are
// equal only when both are nil. Cyclic values are not supported.
func Deep(a, b any) bool {
	return deepValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func deepValue(a, b reflect.Value) bool {
	a, b = unwrap(a), unwrap(b)
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	switch {
	case isNumber(a) && isNumber(b):
		return numbersEqual(a, b)
	case isSequence(a) && isSequence(b):
		return sequencesEqual(a, b)
	case a.Kind() == reflect.Map && b.Kind() == reflect.Map:
		return mapsEqual(a, b)
	case a.Type() != b.Type():
		return false
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}
		if a.IsNil() || b.IsNil() {
			return false
		}
		return deepValue(a.Elem(), b.Elem())
	case reflect.Struct:
		if a.Type() == timeType && a.CanInterface() && b.CanInterface() {
			return a.Interface().(time.Time).Equal(b.Interface().(time.Time)) //nolint:forcetypeassert // type checked above
		}
		for i := range a.NumField() {
			if !deepValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	default:
		return false
	}
}

// unwrap strips interface layers. A nil interface becomes the zero Value.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || isFloat(v)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

// numbersEqual compares by value across kinds. NaN equals NaN.
func numbersEqual(a, b reflect.Value) bool {
	if sameNumber(a, b) {
		return true
	}
	return isFloat(a) && isFloat(b) && math.IsNaN(a.Float()) && math.IsNaN(b.Float())
}

// sameNumber compares by value across kinds without rounding. NaN never
// equals anything.
func sameNumber(a, b reflect.Value) bool {
	switch {
	case isInt(a) && isInt(b):
		return a.Int() == b.Int()
	case isUint(a) && isUint(b):
		return a.Uint() == b.Uint()
	case isInt(a) && isUint(b):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUint(a) && isInt(b):
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	case isFloat(a) && isFloat(b):
		return a.Float() == b.Float()
	case isFloat(a):
		return floatIsInteger(a.Float(), b)
	default:
		return floatIsInteger(b.Float(), a)
	}
}

// floatIsInteger reports whether f is integral and exactly equal to the
// integer held by v.
func floatIsInteger(f float64, v reflect.Value) bool {
	if f != math.Trunc(f) {
		return false
	}
	if isUint(v) {
		return f >= 0 && f < math.MaxUint64 && uint64(f) == v.Uint()
	}
	return f >= math.MinInt64 && f < math.MaxInt64 && int64(f) == v.Int()
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func sequencesEqual(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice &&
		a.Type() == b.Type() && a.Pointer() == b.Pointer() {
		return true
	}
	for i := range a.Len() {
		if !deepValue(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

func mapsEqual(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Type() == b.Type() && a.Pointer() == b.Pointer() {
		return true
	}

	iter := a.MapRange()
	for iter.Next() {
		bv, ok := lookup(b, iter.Key())
		if !ok || !deepValue(iter.Value(), bv) {
			return false
		}
	}
	return true
}

// lookup finds the entry of m whose key equals key, converting between key
// types where that is lossless and scanning otherwise.
func lookup(m, key reflect.Value) (reflect.Value, bool) {
	keyType := m.Type().Key()
	k := unwrap(key)

	if k.IsValid() {
		switch {
		case k.Type().AssignableTo(keyType):
			v := m.MapIndex(k)
			return v, v.IsValid()
		case k.Kind() == reflect.String && keyType.Kind() == reflect.String:
			v := m.MapIndex(k.Convert(keyType))
			return v, v.IsValid()
		}
	}

	iter := m.MapRange()
	for iter.Next() {
		if deepValue(key, iter.Key()) {
			return iter.Value(), true
		}
	}
	return reflect.Value{}, false
}
