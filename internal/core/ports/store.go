package ports

import "go.trai.ch/swatch/internal/core/domain"

// CacheStore persists one fingerprint record and one compiled output per handle.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// ReadSlot returns the persisted slot for handle.
	// Returns nil, nil if the handle was never written.
	ReadSlot(handle domain.Handle) (*domain.CacheSlot, error)

	// WriteSlot replaces the slot for its handle. It is durable when it returns.
	WriteSlot(slot domain.CacheSlot) error

	// WriteOutput replaces the compiled output for handle and returns its path.
	// The path is empty when a write hook vetoed the write.
	WriteOutput(handle domain.Handle, css []byte) (string, error)

	// OutputLocation maps a handle to the location of its compiled output.
	// It does not depend on whether the output exists.
	OutputLocation(handle domain.Handle) domain.Artifact

	// Clear removes every slot and output.
	Clear() error
}

// StoreFactory opens the cache store described by a cache configuration.
type StoreFactory func(cfg domain.CacheConfig, hook WriteHook) (CacheStore, error)
