// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/swatch/internal/core/domain"
)

// CompileRequest is everything the external compiler receives.
type CompileRequest struct {
	Handle      domain.Handle
	Source      []byte
	SourcePath  string
	ImportPaths []string
	Variables   domain.Variables
	Functions   map[string]domain.Function
	// Output receives the compiler's warnings as they are printed. It may be nil.
	Output io.Writer
}

// Compiler turns preprocessor source into a stylesheet.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile returns the compiled stylesheet.
	// A rejected source yields a *domain.CompileError with the diagnostic verbatim.
	Compile(ctx context.Context, req CompileRequest) ([]byte, error)
}

// CompilerFactory builds the compiler described by a compiler configuration.
type CompilerFactory func(cfg domain.CompilerConfig) (Compiler, error)
