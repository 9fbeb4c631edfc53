package ports

import "go.trai.ch/swatch/internal/core/domain"

// VariableHook supplies per-handle variable overrides before the merge.
//
//go:generate mockgen -source=hooks.go -destination=mocks/mock_hooks.go -package=mocks
type VariableHook interface {
	// Variables returns overrides for handle. base holds the variables merged so far.
	Variables(handle domain.Handle, base domain.Variables) (map[string]domain.Value, error)
}

// WriteHook runs before a compiled output is persisted.
type WriteHook interface {
	// BeforeWrite may redirect the output elsewhere. Returning false skips the
	// local write and the fingerprint record, so the next request recompiles.
	BeforeWrite(handle domain.Handle, path string, css []byte) (persist bool, err error)
}
