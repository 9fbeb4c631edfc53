package domain

import "time"

// Config is the resolved swatch configuration.
type Config struct {
	Source   SourceConfig
	Cache    CacheConfig
	Compiler CompilerConfig
	// Debug forces a recompile on every request.
	Debug bool
	// FastPath enables the mtime shortcut in front of full hashing.
	FastPath bool
	// AssetURL is exposed to stylesheets as the theme-url variable.
	AssetURL string
	// Variables are the base theme-level variables.
	Variables map[string]Value
	// HandleVariables holds per-handle overrides keyed by handle.
	HandleVariables map[string]map[string]Value
}

// SourceConfig locates stylesheet sources.
type SourceConfig struct {
	// Root is the directory request paths are resolved against.
	Root string
	// BaseURL is the public URL that maps onto Root.
	BaseURL string
	// ImportPaths are extra directories searched by the compiler.
	ImportPaths []string
}

// CacheConfig locates compiled outputs and fingerprint records.
type CacheConfig struct {
	Dir string
	URL string
	// MirrorDir, when set, receives a copy of every compiled output.
	MirrorDir string
}

// CompilerConfig configures the external compiler process.
type CompilerConfig struct {
	Command []string
	// Style is the output style, "compressed" or "expanded".
	Style   string
	Timeout time.Duration
}
