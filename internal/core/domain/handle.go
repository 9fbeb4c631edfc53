// Package domain contains the core domain models for stylesheet compilation and cache invalidation.
package domain

import (
	"path"
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// Handle identifies one logical stylesheet and keys its cache slot.
// It wraps a unique.Handle[string] so repeated handles share storage.
// The zero Handle is invalid.
type Handle struct {
	h unique.Handle[string]
}

// NewHandle sanitizes raw into a handle.
// Only lowercase alphanumerics, dashes and underscores are kept, which keeps
// cache file names free of separators and dots.
func NewHandle(raw string) (Handle, error) {
	key := sanitizeKey(raw)
	if key == "" {
		return Handle{}, zerr.With(ErrInvalidHandle, "handle", raw)
	}
	return Handle{h: unique.Make(key)}, nil
}

// MustHandle is NewHandle for values known to be valid. It panics otherwise.
func MustHandle(raw string) Handle {
	h, err := NewHandle(raw)
	if err != nil {
		panic(err)
	}
	return h
}

// HandleFromPath derives a handle from a slash separated path below the
// source root. Directories are kept as dash separated prefixes so sheets
// sharing a basename get distinct handles:
// "themes/a/editor.scss" becomes "themes-a-editor".
func HandleFromPath(rel string) (Handle, error) {
	dir, base := path.Split(rel)
	name := sanitizeKey(strings.ReplaceAll(base, SourceExt, ""))
	if name == "" {
		return Handle{}, zerr.With(ErrInvalidHandle, "path", rel)
	}

	parts := make([]string, 0, strings.Count(dir, "/")+1)
	for segment := range strings.SplitSeq(dir, "/") {
		if key := sanitizeKey(segment); key != "" {
			parts = append(parts, key)
		}
	}
	return Handle{h: unique.Make(strings.Join(append(parts, name), "-"))}, nil
}

// String returns the sanitized handle.
func (h Handle) String() string {
	var zero unique.Handle[string]
	if h.h == zero {
		return ""
	}
	return h.h.Value()
}

// IsZero reports whether the handle was never assigned.
func (h Handle) IsZero() bool {
	var zero unique.Handle[string]
	return h.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Handle) UnmarshalText(text []byte) error {
	parsed, err := NewHandle(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func sanitizeKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
