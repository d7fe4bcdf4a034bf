// Package snapshot decodes props and state documents from disk.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SnapshotLoader = (*Loader)(nil)

// Loader implements ports.SnapshotLoader for YAML, JSON and TOML documents.
type Loader struct{}

// NewLoader creates a new snapshot loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes the document at path. The format is chosen by extension.
// An empty path means the structure is absent and yields nil.
func (l *Loader) Load(path string) (any, error) {
	if path == "" {
		return nil, nil
	}

	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotParseFailed.Error()), "path", path)
	}
	return doc, nil
}

type decodeFunc func(data []byte) (any, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return decodeYAML, nil
	case ".json":
		return decodeJSON, nil
	case ".toml":
		return decodeTOML, nil
	default:
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedSnapshotFormat, "extension", ext), "path", path)
	}
}

func decodeYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeJSON keeps the last of duplicate keys. Integers decode to int64 and
// everything else numeric to float64.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return normalizeNumbers(doc), nil
}

var errTrailingData = zerr.New("unexpected data after the top-level value")

func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		f, _ := val.Float64()
		return f
	case map[string]any:
		for k, elem := range val {
			val[k] = normalizeNumbers(elem)
		}
		return val
	case []any:
		for i, elem := range val {
			val[i] = normalizeNumbers(elem)
		}
		return val
	default:
		return v
	}
}

func decodeTOML(data []byte) (any, error) {
	doc := make(map[string]any)
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
