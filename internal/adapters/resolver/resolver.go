// Package resolver implements nested path lookup over loosely typed Go values.
package resolver

import (
	"reflect"
	"strconv"
	"strings"

	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver resolves paths against maps, slices, arrays, structs and pointers to them.
// A missing or non-traversable segment yields an absent result, never an error.
type Resolver struct{}

// New creates a new Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve returns the value at path inside structure.
//
// For raw paths a literal top-level key wins over the parsed form, so a map
// holding the key "a.b" resolves "a.b" to that entry.
func (r *Resolver) Resolve(structure any, path domain.Path) (any, bool) {
	if structure == nil {
		return nil, false
	}

	root := reflect.ValueOf(structure)

	keys := path.Keys()
	if raw, isRaw := path.Raw(); isRaw {
		if v, ok := step(root, raw); ok {
			return export(v)
		}
		keys = Parse(raw)
	}

	if len(keys) == 0 {
		return nil, false
	}

	cur := root
	for _, key := range keys {
		next, ok := step(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}

	return export(cur)
}

func export(v reflect.Value) (any, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}

// step descends one key into v.
func step(v reflect.Value, key any) (reflect.Value, bool) {
	v, ok := indirect(v)
	if !ok {
		return reflect.Value{}, false
	}

	switch v.Kind() {
	case reflect.Map:
		for _, mk := range mapKeys(v.Type().Key(), key) {
			if r := v.MapIndex(mk); r.IsValid() {
				return r, true
			}
		}
	case reflect.Slice, reflect.Array:
		if idx, ok := index(key); ok && idx < v.Len() {
			return v.Index(idx), true
		}
	case reflect.Struct:
		if f, ok := field(v, key); ok {
			return f, true
		}
	default:
	}

	return reflect.Value{}, false
}

// indirect strips interfaces and pointers. It fails on nil.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// mapKeys returns the candidate map keys a path key can stand for.
func mapKeys(keyType reflect.Type, key any) []reflect.Value {
	str, n, isInt := keyForms(key)

	switch keyType.Kind() {
	case reflect.String:
		return []reflect.Value{reflect.ValueOf(str).Convert(keyType)}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !isInt {
			return nil
		}
		mk := reflect.New(keyType).Elem()
		if mk.OverflowInt(int64(n)) {
			return nil
		}
		mk.SetInt(int64(n))
		return []reflect.Value{mk}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !isInt || n < 0 {
			return nil
		}
		mk := reflect.New(keyType).Elem()
		if mk.OverflowUint(uint64(n)) {
			return nil
		}
		mk.SetUint(uint64(n))
		return []reflect.Value{mk}
	case reflect.Interface:
		// Decoders such as yaml.v3 produce map[any]any with mixed key kinds.
		var keys []reflect.Value
		if sv := reflect.ValueOf(str); sv.Type().AssignableTo(keyType) {
			keys = append(keys, sv)
		}
		if nv := reflect.ValueOf(n); isInt && nv.Type().AssignableTo(keyType) {
			keys = append(keys, nv)
		}
		return keys
	default:
		return nil
	}
}

// keyForms returns the string form of key and, when it denotes an integer, its int form.
func keyForms(key any) (string, int, bool) {
	switch k := key.(type) {
	case int:
		return strconv.Itoa(k), k, true
	case string:
		n, err := strconv.Atoi(k)
		if err != nil || strconv.Itoa(n) != k {
			return k, 0, false
		}
		return k, n, true
	default:
		return "", 0, false
	}
}

func index(key any) (int, bool) {
	_, n, ok := keyForms(key)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// field finds an exported struct field by name or by its json/yaml tag.
// Fields of untagged embedded structs are promoted, as encoding/json does.
func field(v reflect.Value, key any) (reflect.Value, bool) {
	name, _, _ := keyForms(key)
	if name == "" {
		return reflect.Value{}, false
	}
	return fieldByName(v, name)
}

func fieldByName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()

	var embedded []int
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous && promotes(sf) {
			embedded = append(embedded, i)
		}
		if !sf.IsExported() {
			continue
		}
		if sf.Name == name || tagName(sf, "json") == name || tagName(sf, "yaml") == name {
			return v.Field(i), true
		}
	}

	for _, i := range embedded {
		f := v.Field(i)
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		if r, ok := fieldByName(f, name); ok {
			return r, true
		}
	}
	return reflect.Value{}, false
}

// promotes reports whether an embedded field exposes its own fields: it must
// be a struct or a pointer to one and carry no tag name of its own.
func promotes(sf reflect.StructField) bool {
	if tagName(sf, "json") != "" || tagName(sf, "yaml") != "" {
		return false
	}
	t := sf.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func tagName(sf reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
	if name == "-" {
		return ""
	}
	return name
}
