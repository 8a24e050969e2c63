package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// MissingFiles returns the paths that do not exist, preserving input order.
// A path that exists but is a directory counts as missing.
func (v *Verifier) MissingFiles(paths []string) ([]string, error) {
	var missing []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				missing = append(missing, path)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
		}
		if info.IsDir() {
			missing = append(missing, path)
		}
	}
	return missing, nil
}
