package pipeline

import (
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
)

var (
	_ ports.VariableHook = ConfigVariables(nil)
	_ ports.VariableHook = VariableHooks(nil)
)

// ConfigVariables serves the per-handle overrides from the configuration file.
type ConfigVariables map[string]map[string]domain.Value

// Variables implements ports.VariableHook.
func (c ConfigVariables) Variables(handle domain.Handle, _ domain.Variables) (map[string]domain.Value, error) {
	return c[handle.String()], nil
}

// VariableHooks runs hooks in order. Each hook sees the overrides of the
// hooks before it merged into base, and later hooks win.
type VariableHooks []ports.VariableHook

// Variables implements ports.VariableHook.
func (hs VariableHooks) Variables(handle domain.Handle, base domain.Variables) (map[string]domain.Value, error) {
	merged := base.Clone()
	out := make(map[string]domain.Value)
	for _, hook := range hs {
		if hook == nil {
			continue
		}
		values, err := hook.Variables(handle, merged)
		if err != nil {
			return nil, err
		}
		for name, value := range values {
			out[name] = value
			merged[name] = value.Literal()
		}
	}
	return out, nil
}
