package ports

// SnapshotLoader decodes before/after documents from disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_loader.go -destination=mocks/mock_snapshot_loader.go -package=mocks
type SnapshotLoader interface {
	// Load decodes the document at path. An empty path yields a nil structure.
	Load(path string) (any, error)
}
