package ports

import "go.trai.ch/i18nhtml/internal/core/domain"

// FileHasher computes the fingerprint of a file on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// Fingerprint returns the current state of the file at path.
	// The returned error matches fs.ErrNotExist when the file is missing.
	Fingerprint(path string) (domain.Fingerprint, error)
}
