package fs

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Record tags keep file, tree and fingerprint inputs in separate domains.
const (
	tagFile byte = 'f'
	tagGap  byte = 'p'
	tagVars byte = 'v'
	tagSrc  byte = 's'
)

// Hasher computes BLAKE3 content fingerprints.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the BLAKE3 digest of a file's content.
func (h *Hasher) ComputeFileHash(path string) (domain.Digest, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	var sum domain.Digest
	copy(sum[:], hasher.Sum(nil))
	return sum, nil
}

// DirectoryDigest digests every file below path in lexical order.
// Each file contributes its slash separated relative path and its content digest,
// so renames and moves change the result as well as edits.
func (h *Hasher) DirectoryDigest(path string) (domain.TreeDigest, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return domain.TreeDigest{}, errors.Join(domain.ErrNotADirectory, zerr.With(domain.ErrPathStatFailed, "path", path))
	}

	hasher := blake3.New()
	var tree domain.TreeDigest
	for file, walkErr := range h.walker.Walk(path) {
		rel := relPath(path, file)
		if walkErr != nil {
			// An unreadable branch contributes a marker only; the result can never match.
			tree.Partial = true
			writeRecord(hasher, tagGap, rel, nil)
			continue
		}
		sum, err := h.ComputeFileHash(file)
		if err != nil {
			return domain.TreeDigest{}, err
		}
		writeRecord(hasher, tagFile, rel, sum[:])
	}

	copy(tree.Sum[:], hasher.Sum(nil))
	return tree, nil
}

// Combine digests the tree, the sorted variables and the source bytes into a fingerprint.
func (h *Hasher) Combine(dir domain.TreeDigest, vars domain.Variables, source []byte) domain.Fingerprint {
	hasher := blake3.New()
	_, _ = hasher.Write(dir.Sum[:])

	for _, name := range vars.Keys() {
		writeRecord(hasher, tagVars, name, []byte(vars[name]))
	}

	_, _ = hasher.Write([]byte{tagSrc})
	_, _ = hasher.Write(source)

	fp := domain.Fingerprint{Partial: dir.Partial}
	copy(fp.Sum[:], hasher.Sum(nil))
	return fp
}

// Compute reads the context's source file once and returns its fingerprint
// together with the bytes it covered, so the compiler sees exactly what was
// fingerprinted. A source directory that is not a directory yields a partial
// fingerprint.
func (h *Hasher) Compute(cc *domain.CompilationContext) (domain.Fingerprint, []byte, error) {
	source, err := os.ReadFile(cc.SourceFile)
	if err != nil {
		return domain.Fingerprint{}, nil, errors.Join(
			domain.ErrIO,
			zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", cc.SourceFile),
		)
	}

	tree, err := h.DirectoryDigest(cc.SourceDir)
	switch {
	case errors.Is(err, domain.ErrNotADirectory):
		tree = domain.TreeDigest{Partial: true}
	case err != nil:
		return domain.Fingerprint{}, nil, errors.Join(domain.ErrIO, err)
	}

	return h.Combine(tree, cc.Variables, source), source, nil
}

// writeRecord writes a length framed tag, name and payload.
func writeRecord(w io.Writer, tag byte, name string, payload []byte) {
	var buf [binary.MaxVarintLen64]byte
	_, _ = w.Write([]byte{tag})
	n := binary.PutUvarint(buf[:], uint64(len(name)))
	_, _ = w.Write(buf[:n])
	_, _ = io.WriteString(w, name)
	n = binary.PutUvarint(buf[:], uint64(len(payload)))
	_, _ = w.Write(buf[:n])
	_, _ = w.Write(payload)
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
