package ports

// Fingerprinter computes stable digests of resolved values.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a hex digest of value. Deep-equal values share a digest.
	// present is false when the value was absent.
	Fingerprint(value any, present bool) string
}
