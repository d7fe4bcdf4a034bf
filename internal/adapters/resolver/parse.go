package resolver

import (
	"strconv"
	"strings"
)

// Parse splits a raw path into keys.
//
// Dots separate keys and brackets hold either an index or a quoted key:
//
//	user.profile.firstName   -> user, profile, firstName
//	items[0].id              -> items, 0, id
//	meta["a.b"]              -> meta, a.b
//
// Bracketed integers become int keys; everything else stays a string.
// Parse never fails: unterminated brackets or quotes consume the rest of
// the input as a single key.
func Parse(raw string) []any {
	if raw == "" {
		return nil
	}

	var (
		keys []any
		cur  strings.Builder
		// pending is set once a key boundary has been seen but the key
		// itself has not been emitted yet. It lets "a..b" and ".a" keep
		// their empty keys.
		pending = true
	)

	flush := func() {
		if pending {
			keys = append(keys, cur.String())
		}
		cur.Reset()
		pending = false
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '.':
			flush()
			pending = true
		case '[':
			if cur.Len() > 0 {
				flush()
			}
			key, next := parseBracket(raw, i+1)
			keys = append(keys, key)
			pending = false
			i = next
		default:
			cur.WriteByte(c)
			pending = true
		}
	}
	flush()

	return keys
}

// parseBracket reads a bracketed key starting right after '['.
// It returns the key and the index of the closing ']' (or the last byte).
func parseBracket(raw string, start int) (any, int) {
	if start >= len(raw) {
		return "", len(raw) - 1
	}

	if q := raw[start]; q == '"' || q == '\'' {
		var sb strings.Builder
		i := start + 1
		for ; i < len(raw); i++ {
			c := raw[i]
			if c == '\\' && i+1 < len(raw) {
				i++
				sb.WriteByte(raw[i])
				continue
			}
			if c == q {
				break
			}
			sb.WriteByte(c)
		}
		// Skip to the closing bracket.
		for i < len(raw) && raw[i] != ']' {
			i++
		}
		return sb.String(), min(i, len(raw)-1)
	}

	end := strings.IndexByte(raw[start:], ']')
	if end < 0 {
		return raw[start:], len(raw) - 1
	}
	content := raw[start : start+end]
	if n, err := strconv.Atoi(content); err == nil && n >= 0 {
		return n, start + end
	}
	return content, start + end
}
