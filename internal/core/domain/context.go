package domain

// Function is a custom compiler function. It receives the already evaluated
// arguments as literals and returns a literal.
type Function func(args []string) (string, error)

// CompilationContext holds the mutable state of a single stylesheet request.
// It is built fresh for every request and never shared.
type CompilationContext struct {
	// Request is the URL or path the request came in with.
	Request string
	// SourceDir contains the source file and its importable siblings.
	SourceDir string
	// SourceFile is the absolute path to the primary source file.
	SourceFile string
	// Handle keys the cache slot and names the compiled file.
	Handle    Handle
	Variables Variables
	// Functions holds the registered custom functions.
	Functions map[string]Function
	// Unregistered names functions removed from the compiler.
	Unregistered map[string]struct{}
	// ImportPaths are extra directories searched after SourceDir.
	ImportPaths []string
}

// EffectiveFunctions returns the registered functions minus the unregistered ones.
func (c *CompilationContext) EffectiveFunctions() map[string]Function {
	out := make(map[string]Function, len(c.Functions))
	for name, fn := range c.Functions {
		if _, removed := c.Unregistered[name]; removed {
			continue
		}
		out[name] = fn
	}
	return out
}

// SearchPaths returns the import search path, SourceDir first.
func (c *CompilationContext) SearchPaths() []string {
	paths := make([]string, 0, len(c.ImportPaths)+1)
	paths = append(paths, c.SourceDir)
	for _, p := range c.ImportPaths {
		if p != c.SourceDir {
			paths = append(paths, p)
		}
	}
	return paths
}
