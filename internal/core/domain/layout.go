package domain

import "path/filepath"

const (
	// WorkDirName is the name of the internal workspace directory.
	WorkDirName = ".i18nhtml"

	// CacheDirName is the name of the fingerprint cache directory.
	CacheDirName = "cache"

	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "i18nhtml.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// DefaultParallelism bounds concurrent renders and node builds when the project does not set it.
	DefaultParallelism = 4
)

// DefaultCachePath returns the default path of the fingerprint cache relative to the project root.
// It joins .i18nhtml and cache.
func DefaultCachePath() string {
	return filepath.Join(WorkDirName, CacheDirName)
}
