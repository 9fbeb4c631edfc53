package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StatSigner = (*StatSigner)(nil)

// StatSigner summarizes file sizes and mtimes without reading content.
type StatSigner struct {
	walker *Walker
}

// NewStatSigner creates a new StatSigner.
func NewStatSigner(walker *Walker) *StatSigner {
	return &StatSigner{walker: walker}
}

// Signature returns an xxhash over the relative path, size and mtime of every
// file under the source directory, the source file itself and the variables.
// Any unreadable branch is reported as an error so the caller falls back to
// full hashing.
func (s *StatSigner) Signature(cc *domain.CompilationContext) (string, time.Time, error) {
	hasher := xxhash.New()
	var newest time.Time

	if err := s.statFile(hasher, cc.SourceFile, cc.SourceFile, &newest); err != nil {
		return "", time.Time{}, err
	}

	info, err := os.Stat(cc.SourceDir)
	if err != nil || !info.IsDir() {
		return "", time.Time{}, errors.Join(domain.ErrNotADirectory, zerr.With(domain.ErrPathStatFailed, "path", cc.SourceDir))
	}

	for file, walkErr := range s.walker.Walk(cc.SourceDir) {
		if walkErr != nil {
			return "", time.Time{}, walkErr
		}
		if err := s.statFile(hasher, relPath(cc.SourceDir, file), file, &newest); err != nil {
			return "", time.Time{}, err
		}
	}

	for _, name := range cc.Variables.Keys() {
		writeRecord(hasher, tagVars, name, []byte(cc.Variables[name]))
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), newest, nil
}

func (s *StatSigner) statFile(hasher *xxhash.Digest, name, path string, newest *time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	var meta [16]byte
	binary.LittleEndian.PutUint64(meta[:8], uint64(info.Size()))               //nolint:gosec // Sizes are non-negative
	binary.LittleEndian.PutUint64(meta[8:], uint64(info.ModTime().UnixNano())) //nolint:gosec // Bit pattern only
	writeRecord(hasher, tagFile, name, meta[:])

	if info.ModTime().After(*newest) {
		*newest = info.ModTime()
	}
	return nil
}
