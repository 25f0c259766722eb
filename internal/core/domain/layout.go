package domain

import "path/filepath"

const (
	// ReformDirName is the default name of the internal workspace directory.
	ReformDirName = ".reform"

	// CacheFileName is the name of the fingerprint cache file inside the cache directory.
	CacheFileName = "reform-cache.properties"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "reform.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CachePath returns the location of the fingerprint cache for a project.
// A relative cacheDir is resolved against baseDir; an empty one falls back to ReformDirName.
func CachePath(baseDir, cacheDir string) string {
	if cacheDir == "" {
		cacheDir = ReformDirName
	}
	if !filepath.IsAbs(cacheDir) {
		cacheDir = filepath.Join(baseDir, cacheDir)
	}
	return filepath.Join(cacheDir, CacheFileName)
}
