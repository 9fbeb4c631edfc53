package domain

import (
	"encoding/hex"
	"strings"

	"go.trai.ch/zerr"
)

// partialPrefix marks a persisted fingerprint that was computed from incomplete input.
const partialPrefix = "partial:"

// DigestSize is the size in bytes of digests and fingerprints.
const DigestSize = 32

// Digest is the content digest of a file or directory subtree.
type Digest [DigestSize]byte

// Fingerprint summarizes everything a compiled artifact depends on:
// the source directory tree, the variable set and the source file bytes.
type Fingerprint struct {
	Sum Digest
	// Partial is set when part of the input could not be digested.
	// A partial fingerprint never matches a stored one.
	Partial bool
}

// String returns the hex encoding of the sum.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f.Sum[:])
}

// Equal reports whether both fingerprints are complete and identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return !f.Partial && !other.Partial && f.Sum == other.Sum
}

// ParseFingerprint decodes a hex encoded fingerprint, optionally marked partial.
func ParseFingerprint(s string) (Fingerprint, error) {
	s, partial := strings.CutPrefix(s, partialPrefix)
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Fingerprint{}, zerr.Wrap(err, ErrInvalidFingerprint.Error())
	}
	if len(raw) != DigestSize {
		return Fingerprint{}, zerr.With(ErrInvalidFingerprint, "length", len(raw))
	}
	f := Fingerprint{Partial: partial}
	copy(f.Sum[:], raw)
	return f, nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Fingerprint) MarshalText() ([]byte, error) {
	if f.Partial {
		return []byte(partialPrefix + f.String()), nil
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fingerprint) UnmarshalText(text []byte) error {
	parsed, err := ParseFingerprint(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// TreeDigest is the digest of a directory subtree.
type TreeDigest struct {
	Sum Digest
	// Partial is set when a branch of the tree could not be read.
	Partial bool
}
