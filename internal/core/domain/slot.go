package domain

import "time"

// CacheSlot is the persisted state for one handle. A write replaces the whole slot.
type CacheSlot struct {
	Handle      Handle      `json:"handle"`
	Fingerprint Fingerprint `json:"fingerprint"`
	OutputPath  string      `json:"output_path,omitzero"`
	CompiledAt  time.Time   `json:"compiled_at,omitzero"`
	// StatSignature summarizes file sizes and mtimes for the optional fast path.
	StatSignature string `json:"stat_signature,omitzero"`
}

// Artifact is the published reference to a compiled stylesheet.
type Artifact struct {
	Handle Handle
	// Path is the filesystem location of the compiled output.
	Path string
	// URL is the public location of the compiled output.
	URL string
	// Reused is true when the cached output was served without compiling.
	Reused bool
}
