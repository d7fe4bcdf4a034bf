package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shouldupdate/internal/adapters/snapshot"
	"go.trai.ch/shouldupdate/internal/core/domain"
)

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected any
	}{
		{
			name:    "yaml",
			file:    "props.yaml",
			content: "user:\n  id: some-id\n  age: 41\n",
			expected: map[string]any{
				"user": map[string]any{"id": "some-id", "age": 41},
			},
		},
		{
			name:     "yml",
			file:     "state.yml",
			content:  "- a\n- b\n",
			expected: []any{"a", "b"},
		},
		{
			name:    "json",
			file:    "props.json",
			content: `{"form": {"isActive": true, "tags": ["x"]}}`,
			expected: map[string]any{
				"form": map[string]any{"isActive": true, "tags": []any{"x"}},
			},
		},
		{
			name:    "json numbers",
			file:    "state.json",
			content: `{"count": 9007199254740993, "ratio": 0.5, "items": [1, 2.0]}`,
			expected: map[string]any{
				"count": int64(9007199254740993),
				"ratio": 0.5,
				"items": []any{int64(1), 2.0},
			},
		},
		{
			name:     "json duplicate keys keep the last value",
			file:     "props.json",
			content:  `{"a": 1, "a": 2}`,
			expected: map[string]any{"a": int64(2)},
		},
		{
			name:    "toml",
			file:    "props.TOML",
			content: "[user]\nid = \"some-id\"\nage = 41\n",
			expected: map[string]any{
				"user": map[string]any{"id": "some-id", "age": int64(41)},
			},
		},
	}

	loader := snapshot.NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := loader.Load(writeSnapshot(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc)
		})
	}
}

func TestLoad_EmptyPathIsAbsent(t *testing.T) {
	doc, err := snapshot.NewLoader().Load("")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestLoad_Errors(t *testing.T) {
	loader := snapshot.NewLoader()

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := loader.Load(writeSnapshot(t, "props.ini", "a=1"))
		require.ErrorContains(t, err, domain.ErrUnsupportedSnapshotFormat.Error())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, domain.ErrSnapshotReadFailed.Error())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := loader.Load(writeSnapshot(t, "props.yaml", "a: [1\n"))
		require.ErrorContains(t, err, domain.ErrSnapshotParseFailed.Error())
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := loader.Load(writeSnapshot(t, "props.json", `{"a": `))
		require.ErrorContains(t, err, domain.ErrSnapshotParseFailed.Error())
	})

	t.Run("trailing json", func(t *testing.T) {
		_, err := loader.Load(writeSnapshot(t, "props.json", `{"a": 1} {"b": 2}`))
		require.ErrorContains(t, err, domain.ErrSnapshotParseFailed.Error())
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := loader.Load(writeSnapshot(t, "props.toml", "a = \n"))
		require.ErrorContains(t, err, domain.ErrSnapshotParseFailed.Error())
	})
}
