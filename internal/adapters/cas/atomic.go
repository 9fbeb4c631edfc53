package cas

import (
	"os"
	"path/filepath"

	"go.trai.ch/swatch/internal/core/domain"
)

const tempPrefix = ".swatch-tmp-"

// syncDir flushes a directory entry change such as a rename to disk.
var syncDir = func(dir string) error {
	d, err := os.Open(dir) //nolint:gosec // Directory of a cache file
	if err != nil {
		return err
	}
	if err := d.Sync(); err != nil {
		_ = d.Close()
		return err
	}
	return d.Close()
}

// atomicWriteFile writes data to a temp file in the target directory, syncs it
// and renames it over path, so readers see either the old or the new content.
// The directory is synced after the rename so the new entry survives a crash.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, tempPrefix+"*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	return syncDir(dir)
}
