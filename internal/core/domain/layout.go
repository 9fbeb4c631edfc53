package domain

import "path/filepath"

const (
	// SwatchDirName is the name of the internal workspace directory.
	SwatchDirName = ".swatch"

	// CacheDirName is the name of the compiled output cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the default configuration file.
	ConfigFileName = "swatch.yaml"

	// SourceExt is the extension of preprocessor sources.
	SourceExt = ".scss"

	// OutputExt is the extension of compiled stylesheets.
	OutputExt = ".css"

	// FingerprintSuffix is appended to a handle to name its fingerprint record.
	FingerprintSuffix = ".fingerprint.json"

	// DefaultCacheURL is the public URL prefix of the cache directory.
	DefaultCacheURL = "/swatch-cache"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default compiled output directory.
// It joins .swatch and cache.
func DefaultCachePath() string {
	return filepath.Join(SwatchDirName, CacheDirName)
}
