package cas

import (
	"path/filepath"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.WriteHook = (*MirrorHook)(nil)
	_ ports.WriteHook = WriteHooks(nil)
)

// MirrorHook copies every compiled output into a second directory.
// The primary write still happens.
type MirrorHook struct {
	dir string
}

// NewMirrorHook creates a MirrorHook writing into dir.
func NewMirrorHook(dir string) *MirrorHook {
	return &MirrorHook{dir: dir}
}

// BeforeWrite implements ports.WriteHook.
func (h *MirrorHook) BeforeWrite(handle domain.Handle, path string, css []byte) (bool, error) {
	target := filepath.Join(h.dir, filepath.Base(path))
	if err := atomicWriteFile(target, css); err != nil {
		return false, zerr.With(zerr.With(zerr.Wrap(err, "failed to mirror output"), "path", target), "handle", handle.String())
	}
	return true, nil
}

// WriteHooks runs hooks in order. The write is persisted only if every hook agrees.
type WriteHooks []ports.WriteHook

// BeforeWrite implements ports.WriteHook.
func (hs WriteHooks) BeforeWrite(handle domain.Handle, path string, css []byte) (bool, error) {
	persist := true
	for _, h := range hs {
		ok, err := h.BeforeWrite(handle, path, css)
		if err != nil {
			return false, err
		}
		persist = persist && ok
	}
	return persist, nil
}
