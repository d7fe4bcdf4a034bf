// Package fingerprint computes canonical xxhash digests of nested values.
package fingerprint

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/shouldupdate/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

var timeType = reflect.TypeFor[time.Time]()

// Value tags written ahead of each encoded value.
const (
	tagAbsent  byte = 'u'
	tagNil     byte = 'n'
	tagFalse   byte = 'F'
	tagTrue    byte = 'T'
	tagInt     byte = 'i'
	tagUint    byte = 'U'
	tagFloat   byte = 'f'
	tagNaN     byte = 'N'
	tagComplex byte = 'c'
	tagString  byte = 's'
	tagList    byte = 'l'
	tagMap     byte = 'm'
	tagStruct  byte = 'S'
	tagTime    byte = 't'
	tagOpaque  byte = 'o'
)

// Hasher implements ports.Fingerprinter.
//
// Encoding mirrors deep equality: numbers are canonicalized so 1, 1.0 and
// uint8(1) hash alike, map entries are sorted by the digest of their key and
// every sequence kind shares one encoding. Deep-equal values therefore share a
// fingerprint; the converse is not guaranteed.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the hex digest of value.
func (h *Hasher) Fingerprint(value any, present bool) string {
	return fmt.Sprintf("%016x", h.Sum64(value, present))
}

// Sum64 returns the raw digest of value.
func (h *Hasher) Sum64(value any, present bool) uint64 {
	d := xxhash.New()
	if !present {
		_, _ = d.Write([]byte{tagAbsent})
		return d.Sum64()
	}
	writeValue(d, reflect.ValueOf(value))
	return d.Sum64()
}

func writeValue(d *xxhash.Digest, v reflect.Value) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			v = reflect.Value{}
			break
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		_, _ = d.Write([]byte{tagNil})
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			_, _ = d.Write([]byte{tagTrue})
		} else {
			_, _ = d.Write([]byte{tagFalse})
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeInt(d, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u <= math.MaxInt64 {
			writeInt(d, int64(u))
			return
		}
		writeTagged(d, tagUint, u)
	case reflect.Float32, reflect.Float64:
		writeFloat(d, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeTagged(d, tagComplex, math.Float64bits(real(c)))
		writeTagged(d, tagComplex, math.Float64bits(imag(c)))
	case reflect.String:
		writeString(d, tagString, v.String())
	case reflect.Slice, reflect.Array:
		writeTagged(d, tagList, uint64(v.Len()))
		for i := range v.Len() {
			writeValue(d, v.Index(i))
		}
	case reflect.Map:
		writeMap(d, v)
	case reflect.Pointer:
		if v.IsNil() {
			_, _ = d.Write([]byte{tagNil})
			return
		}
		writeValue(d, v.Elem())
	case reflect.Struct:
		writeStruct(d, v)
	default:
		// Funcs, channels and unsafe pointers only hash their type.
		writeString(d, tagOpaque, v.Type().String())
	}
}

func writeInt(d *xxhash.Digest, n int64) {
	writeTagged(d, tagInt, uint64(n)) //nolint:gosec // bit pattern is what gets hashed
}

func writeFloat(d *xxhash.Digest, f float64) {
	switch {
	case math.IsNaN(f):
		_, _ = d.Write([]byte{tagNaN})
	case f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64:
		writeInt(d, int64(f))
	case f == math.Trunc(f) && f >= 0 && f < math.MaxUint64:
		writeTagged(d, tagUint, uint64(f))
	default:
		writeTagged(d, tagFloat, math.Float64bits(f))
	}
}

func writeTagged(d *xxhash.Digest, tag byte, n uint64) {
	var buf [9]byte
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], n)
	_, _ = d.Write(buf[:])
}

func writeString(d *xxhash.Digest, tag byte, s string) {
	writeTagged(d, tag, uint64(len(s)))
	_, _ = d.WriteString(s)
}

// writeMap hashes entries in the order of their key digests so that map
// iteration order and key type do not matter.
func writeMap(d *xxhash.Digest, v reflect.Value) {
	type entry struct {
		key   uint64
		value uint64
	}

	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		kd := xxhash.New()
		writeValue(kd, iter.Key())
		vd := xxhash.New()
		writeValue(vd, iter.Value())
		entries = append(entries, entry{key: kd.Sum64(), value: vd.Sum64()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	})

	writeTagged(d, tagMap, uint64(len(entries)))
	for _, e := range entries {
		_ = binary.Write(d, binary.LittleEndian, e.key)
		_ = binary.Write(d, binary.LittleEndian, e.value)
	}
}

func writeStruct(d *xxhash.Digest, v reflect.Value) {
	if v.Type() == timeType && v.CanInterface() {
		t := v.Interface().(time.Time) //nolint:forcetypeassert // type checked above
		writeString(d, tagTime, t.UTC().Format(time.RFC3339Nano))
		return
	}

	writeString(d, tagStruct, v.Type().String())
	for i := range v.NumField() {
		writeValue(d, v.Field(i))
	}
}
