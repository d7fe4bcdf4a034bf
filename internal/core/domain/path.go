package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Path identifies a location inside a nested structure.
// It is either a raw string such as "user.profile.firstName" or "items[0].id",
// or an explicit sequence of string and int keys. The detector treats paths as
// opaque; only a ports.PathResolver interprets them.
type Path struct {
	raw  string
	keys []any
	set  bool
}

// NewPath creates a Path from its raw string form.
func NewPath(raw string) Path {
	return Path{raw: raw}
}

// NewPaths converts a slice of raw strings into a WatchList.
func NewPaths(raws []string) WatchList {
	if len(raws) == 0 {
		return nil
	}
	paths := make(WatchList, len(raws))
	for i, raw := range raws {
		paths[i] = NewPath(raw)
	}
	return paths
}

// PathOf creates a Path from an explicit key sequence.
// Integer keys index sequences; every other key is used as a mapping key or
// field name. Keys other than strings and ints are normalized to strings.
func PathOf(keys ...any) Path {
	normalized := make([]any, len(keys))
	for i, k := range keys {
		switch key := k.(type) {
		case string:
			normalized[i] = key
		case int:
			normalized[i] = key
		case int64:
			normalized[i] = int(key)
		case int32:
			normalized[i] = int(key)
		case uint:
			normalized[i] = int(key) //nolint:gosec // keys are small indexes
		default:
			normalized[i] = fmt.Sprint(key)
		}
	}
	return Path{keys: normalized, set: true}
}

// Raw returns the raw string form and true when the path was created from a string.
func (p Path) Raw() (string, bool) {
	return p.raw, !p.set
}

// Keys returns the explicit key sequence. It is nil for raw paths.
func (p Path) Keys() []any {
	return p.keys
}

// String renders the path in dotted/bracketed form. Keys holding a dot or a
// bracket, and empty keys, are written quoted in brackets.
func (p Path) String() string {
	if !p.set {
		return p.raw
	}

	var sb strings.Builder
	for i, k := range p.keys {
		if n, ok := k.(int); ok {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(']')
			continue
		}
		key := k.(string) //nolint:forcetypeassert // PathOf guarantees string or int
		if needsQuoting(key) {
			writeQuoted(&sb, key)
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(key)
	}
	return sb.String()
}

// needsQuoting reports whether key would not survive a round trip as a bare
// dotted segment.
func needsQuoting(key string) bool {
	return key == "" || strings.ContainsAny(key, ".[")
}

// writeQuoted renders key as ["..."], escaping quotes and backslashes.
func writeQuoted(sb *strings.Builder, key string) {
	sb.WriteString(`["`)
	for i := range len(key) {
		if c := key[i]; c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(key[i])
	}
	sb.WriteString(`"]`)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is kept as a raw path.
func (p *Path) UnmarshalText(text []byte) error {
	*p = NewPath(string(text))
	return nil
}
