package ports

import (
	"time"

	"go.trai.ch/swatch/internal/core/domain"
)

// Fingerprinter computes content fingerprints for compilation requests.
//
//go:generate mockgen -destination=mocks/mock_fingerprinter.go -package=mocks -source=fingerprinter.go
type Fingerprinter interface {
	// DirectoryDigest digests every file under path, recursing into subdirectories
	// in name order. It returns domain.ErrNotADirectory if path is not a directory.
	// Unreadable branches mark the result partial instead of failing.
	DirectoryDigest(path string) (domain.TreeDigest, error)

	// Combine digests the directory digest, the variables and the source bytes.
	Combine(dir domain.TreeDigest, vars domain.Variables, source []byte) domain.Fingerprint

	// Compute reads the context's source file and directory and returns the
	// fingerprint with the source bytes it covered.
	Compute(cc *domain.CompilationContext) (domain.Fingerprint, []byte, error)
}

// StatSigner summarizes file metadata for the optional mtime fast path.
type StatSigner interface {
	// Signature returns a digest over the size and mtime of every input file plus
	// the variables, and the newest mtime seen.
	Signature(cc *domain.CompilationContext) (sig string, newest time.Time, err error)
}
