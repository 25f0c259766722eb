package ports

import "go.trai.ch/reform/internal/core/domain"

// Hasher computes content fingerprints for change detection.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns the digest of data. Equal inputs always yield equal fingerprints.
	Fingerprint(data []byte) domain.Fingerprint
	// FingerprintFile streams the file at path through the same digest as Fingerprint.
	FingerprintFile(path string) (domain.Fingerprint, error)
}
