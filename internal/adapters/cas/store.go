// Package cas implements the on-disk cache of compiled stylesheets and their fingerprints.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a file-per-handle strategy.
// Each handle owns <dir>/<handle>.css and <dir>/<handle>.fingerprint.json.
type Store struct {
	dir    string
	url    string
	hook   ports.WriteHook
	logger ports.Logger
}

// NewStore creates a Store rooted at cfg.Dir, creating the directory if needed.
// hook may be nil.
func NewStore(cfg domain.CacheConfig, hook ports.WriteHook, logger ports.Logger) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = domain.DefaultCachePath()
	}
	url := cfg.URL
	if url == "" {
		url = domain.DefaultCacheURL
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	return &Store{
		dir:    filepath.Clean(dir),
		url:    strings.TrimRight(url, "/"),
		hook:   hook,
		logger: logger,
	}, nil
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// ReadSlot returns the slot for handle, or nil when none is stored.
// A record that cannot be decoded is reported and treated as absent.
func (s *Store) ReadSlot(handle domain.Handle) (*domain.CacheSlot, error) {
	filename := s.slotPath(handle)
	//nolint:gosec // Path is built from the cache dir and a sanitized handle
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var slot domain.CacheSlot
	if err := json.Unmarshal(data, &slot); err != nil {
		s.warn(zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename))
		return nil, nil
	}
	if slot.Handle != handle {
		s.warn(zerr.With(zerr.With(domain.ErrStoreUnmarshalFailed, "path", filename), "handle", slot.Handle.String()))
		return nil, nil
	}

	return &slot, nil
}

// WriteSlot durably replaces the slot for slot.Handle.
func (s *Store) WriteSlot(slot domain.CacheSlot) error {
	data, err := json.MarshalIndent(slot, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.slotPath(slot.Handle)
	if err := atomicWriteFile(filename, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	return nil
}

// WriteOutput writes the compiled stylesheet for handle and returns its path.
// The write hook, if any, runs first and may veto the write, in which case
// the returned path is empty.
func (s *Store) WriteOutput(handle domain.Handle, css []byte) (string, error) {
	filename := s.outputPath(handle)

	if s.hook != nil {
		persist, err := s.hook.BeforeWrite(handle, filename, css)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrWriteHookFailed.Error()), "handle", handle.String())
		}
		if !persist {
			return "", nil
		}
	}

	if err := atomicWriteFile(filename, css); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	return filename, nil
}

// OutputLocation maps a handle to its output path and public URL.
func (s *Store) OutputLocation(handle domain.Handle) domain.Artifact {
	name := handle.String() + domain.OutputExt
	return domain.Artifact{
		Handle: handle,
		Path:   filepath.Join(s.dir, name),
		URL:    s.url + "/" + name,
	}
}

// Clear removes every output and slot record in the cache directory.
// Other files are left alone.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreClearFailed.Error()), "path", s.dir)
	}

	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !owned(name) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, zerr.With(zerr.Wrap(err, domain.ErrStoreClearFailed.Error()), "path", name))
		}
	}
	return errors.Join(errs...)
}

func (s *Store) slotPath(handle domain.Handle) string {
	return filepath.Join(s.dir, handle.String()+domain.FingerprintSuffix)
}

func (s *Store) outputPath(handle domain.Handle) string {
	return filepath.Join(s.dir, handle.String()+domain.OutputExt)
}

func (s *Store) warn(err error) {
	if s.logger != nil {
		s.logger.Warn(err.Error())
	}
}

func owned(name string) bool {
	return strings.HasSuffix(name, domain.OutputExt) ||
		strings.HasSuffix(name, domain.FingerprintSuffix) ||
		strings.HasPrefix(name, tempPrefix)
}
