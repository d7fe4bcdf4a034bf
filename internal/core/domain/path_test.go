package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shouldupdate/internal/core/domain"
)

func TestPath_Raw(t *testing.T) {
	p := domain.NewPath("user.profile.firstName")

	raw, ok := p.Raw()
	assert.True(t, ok)
	assert.Equal(t, "user.profile.firstName", raw)
	assert.Nil(t, p.Keys())
	assert.Equal(t, "user.profile.firstName", p.String())
}

func TestPath_Keys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []any
		expected []any
		str      string
	}{
		{
			name:     "strings only",
			keys:     []any{"user", "profile"},
			expected: []any{"user", "profile"},
			str:      "user.profile",
		},
		{
			name:     "index in the middle",
			keys:     []any{"items", 0, "id"},
			expected: []any{"items", 0, "id"},
			str:      "items[0].id",
		},
		{
			name:     "wider ints are narrowed",
			keys:     []any{"items", int64(2)},
			expected: []any{"items", 2},
			str:      "items[2]",
		},
		{
			name:     "other keys become strings",
			keys:     []any{"flags", true},
			expected: []any{"flags", "true"},
			str:      "flags.true",
		},
		{
			name:     "keys with dots are quoted",
			keys:     []any{"meta", "a.b", "c"},
			expected: []any{"meta", "a.b", "c"},
			str:      `meta["a.b"].c`,
		},
		{
			name:     "quotes and backslashes are escaped",
			keys:     []any{`say "hi"[\]`},
			expected: []any{`say "hi"[\]`},
			str:      `["say \"hi\"[\\]"]`,
		},
		{
			name:     "empty key",
			keys:     []any{"a", "", 0},
			expected: []any{"a", "", 0},
			str:      `a[""][0]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.PathOf(tt.keys...)

			_, isRaw := p.Raw()
			assert.False(t, isRaw)
			assert.Equal(t, tt.expected, p.Keys())
			assert.Equal(t, tt.str, p.String())
		})
	}
}

func TestPath_Text(t *testing.T) {
	var p domain.Path
	assert.NoError(t, p.UnmarshalText([]byte("form.isActive")))

	raw, ok := p.Raw()
	assert.True(t, ok)
	assert.Equal(t, "form.isActive", raw)

	text, err := p.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "form.isActive", string(text))
}

func TestNewPaths(t *testing.T) {
	assert.Nil(t, domain.NewPaths(nil))

	paths := domain.NewPaths([]string{"a", "b.c"})
	assert.Len(t, paths, 2)
	assert.Equal(t, "b.c", paths[1].String())
}
