package config

import (
	"strconv"

	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only watch file version understood by the loader.
const CurrentVersion = "1"

// Watchfile represents the structure of a watch.yaml configuration file.
type Watchfile struct {
	Version           string    `yaml:"version"`
	Dependencies      []PathDTO `yaml:"dependencies"`
	StateDependencies []PathDTO `yaml:"stateDependencies"`
	Shallow           bool      `yaml:"shallow"`

	// Extra collects every other top-level key.
	Extra map[string]any `yaml:",inline"`
}

// PathDTO is a watched path as written in the file: either a dotted string
// or a list of keys.
type PathDTO struct {
	domain.Path
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PathDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		p.Path = domain.NewPath(node.Value)
		return nil
	case yaml.SequenceNode:
		keys := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return zerr.With(domain.ErrInvalidPath, "line", child.Line)
			}
			if child.Tag == "!!int" {
				if n, err := strconv.Atoi(child.Value); err == nil {
					keys = append(keys, n)
					continue
				}
			}
			keys = append(keys, child.Value)
		}
		p.Path = domain.PathOf(keys...)
		return nil
	default:
		return zerr.With(domain.ErrInvalidPath, "line", node.Line)
	}
}

func toWatchList(dtos []PathDTO) domain.WatchList {
	if len(dtos) == 0 {
		return nil
	}
	paths := make(domain.WatchList, len(dtos))
	for i, dto := range dtos {
		paths[i] = dto.Path
	}
	return paths
}
