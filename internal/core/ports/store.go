package ports

import "go.trai.ch/i18nhtml/internal/core/domain"

// FingerprintStore persists fingerprint records, one record per output target.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get retrieves the record of the given target from cacheDir.
	// Returns nil, nil if not found.
	Get(cacheDir, target string) (*domain.FingerprintRecord, error)

	// Put stores the record in cacheDir, replacing any previous record of the same target.
	Put(cacheDir string, record domain.FingerprintRecord) error

	// Clear removes every record stored in cacheDir.
	Clear(cacheDir string) error
}
