package domain

import (
	"maps"
	"slices"
)

// Variables maps variable names to serialized compiler literals.
type Variables map[string]string

// Merge copies src into v. Later writes win.
func (v Variables) Merge(src Variables) {
	maps.Copy(v, src)
}

// MergeValues serializes each value with Literal and merges it into v.
func (v Variables) MergeValues(src map[string]Value) {
	for name, value := range src {
		v[name] = value.Literal()
	}
}

// Keys returns the variable names in sorted order.
func (v Variables) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// Clone returns an independent copy.
func (v Variables) Clone() Variables {
	if v == nil {
		return Variables{}
	}
	return maps.Clone(v)
}
