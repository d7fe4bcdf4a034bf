package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the watch file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read watch file")

	// ErrConfigParseFailed is returned when the watch file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse watch file")

	// ErrUnsupportedVersion is returned when the watch file declares an unknown version.
	ErrUnsupportedVersion = zerr.New("unsupported watch file version")

	// ErrInvalidPath is returned when a watched path is neither a string nor a list of keys.
	ErrInvalidPath = zerr.New("invalid path, expected a string or a list of keys")

	// ErrSnapshotReadFailed is returned when a snapshot document cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot")

	// ErrSnapshotParseFailed is returned when a snapshot document cannot be decoded.
	ErrSnapshotParseFailed = zerr.New("failed to parse snapshot")

	// ErrUnsupportedSnapshotFormat is returned when a snapshot has an unknown file extension.
	ErrUnsupportedSnapshotFormat = zerr.New("unsupported snapshot format, expected .yaml, .yml, .json or .toml")
)
