// Package cas implements the fingerprint record store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore using a file-per-target strategy.
type Store struct{}

// NewStore creates a new FingerprintStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the fingerprint record for a given target path.
func (s *Store) Get(cacheDir, target string) (*domain.FingerprintRecord, error) {
	filename := s.getFilename(cacheDir, target)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "target", target)
	}

	var record domain.FingerprintRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreUnmarshalFailed, err), "target", target)
	}

	return &record, nil
}

// Put stores the fingerprint record.
func (s *Store) Put(cacheDir string, record domain.FingerprintRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(cacheDir, record.Target)
	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	// Write through a temporary file so concurrent readers never see a partial record.
	tmp, err := os.CreateTemp(cacheDir, ".record-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Clear removes the cache directory and every record in it.
func (s *Store) Clear(cacheDir string) error {
	if err := os.RemoveAll(cacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFailedToCleanCache.Error()), "path", cacheDir)
	}
	return nil
}

func (s *Store) getFilename(cacheDir, target string) string {
	hash := sha256.Sum256([]byte(target))
	hexHash := hex.EncodeToString(hash[:])
	return filepath.Join(cacheDir, hexHash+".json")
}
