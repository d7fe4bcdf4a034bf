// Package config provides the watch file loader for shouldupdate.
package config

import (
	"os"

	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// legacyStateKey is the name older watch files used for the state list.
const legacyStateKey = "dependenciesState"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML watch file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new watch file loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the watch file at path and returns its dependency lists.
func (l *Loader) Load(path string) (domain.Dependencies, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Dependencies{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var wf Watchfile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return domain.Dependencies{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if wf.Version != "" && wf.Version != CurrentVersion {
		return domain.Dependencies{}, zerr.With(
			zerr.With(domain.ErrUnsupportedVersion, "version", wf.Version),
			"path", path,
		)
	}

	if _, ok := wf.Extra[legacyStateKey]; ok {
		l.logger.Warn(path + ": '" + legacyStateKey + "' is not read, use 'stateDependencies'")
	}

	extra := wf.Extra
	if len(extra) == 0 {
		extra = nil
	}

	return domain.NewDependencies(
		toWatchList(wf.Dependencies),
		toWatchList(wf.StateDependencies),
		domain.ModeOf(wf.Shallow),
		extra,
	), nil
}
