// Package pipeline implements the demand-driven stylesheet compile pipeline.
package pipeline

import (
	"maps"
	"sync"

	"go.trai.ch/swatch/internal/core/domain"
)

// Registry holds the process-wide custom functions and base variables.
// It is built once at startup and shared by reference between requests;
// each request works on a snapshot.
type Registry struct {
	mu           sync.RWMutex
	functions    map[string]domain.Function
	unregistered map[string]struct{}
	variables    map[string]domain.Value
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:    make(map[string]domain.Function),
		unregistered: make(map[string]struct{}),
		variables:    make(map[string]domain.Value),
	}
}

// Register adds a custom function. Registering a name clears a previous Unregister.
func (r *Registry) Register(name string, fn domain.Function) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions[name] = fn
	delete(r.unregistered, name)
}

// Unregister removes a function from the compiler, including built-in ones
// the registry never saw.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unregistered[name] = struct{}{}
}

// AddVariable sets a base variable. Later calls win.
func (r *Registry) AddVariable(name string, value domain.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variables[name] = value
}

// RemoveVariable deletes a base variable. Unknown names are ignored.
func (r *Registry) RemoveVariable(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.variables, name)
}

// Snapshot copies the registry state for one request.
func (r *Registry) Snapshot() (functions map[string]domain.Function, unregistered map[string]struct{}, vars map[string]domain.Value) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.functions), maps.Clone(r.unregistered), maps.Clone(r.variables)
}
