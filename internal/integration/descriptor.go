// Package integration defines the collaborator interface between the build and its
// pluggable integrations: the closed hook vocabulary, integration descriptors, the
// per-build hook context and a catalog of integrations that can be activated by name.
package integration

import (
	"fmt"
	"sort"
)

// Descriptor is an activated integration: a stable name and the hooks it implements.
// Keys of Hooks are validated against the vocabulary when the descriptor is registered.
type Descriptor struct {
	// Name identifies the integration in error messages and must be unique per site.
	Name string

	// Hooks maps hook names to implementations.
	Hooks map[HookName]HookFunc
}

// New builds a descriptor from name and hooks.
func New(name string, hooks map[HookName]HookFunc) Descriptor {
	return Descriptor{Name: name, Hooks: hooks}
}

// Implements reports whether the descriptor declares h.
func (d Descriptor) Implements(h HookName) bool {
	_, ok := d.Hooks[h]
	return ok
}

// HookNames returns the declared hook names, vocabulary hooks first in category order,
// then unknown names sorted lexically.
func (d Descriptor) HookNames() []HookName {
	names := make([]HookName, 0, len(d.Hooks))
	for h := range d.Hooks {
		names = append(names, h)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := names[i].Rank(), names[j].Rank()
		switch {
		case ri >= 0 && rj >= 0:
			return ri < rj
		case ri >= 0:
			return true
		case rj >= 0:
			return false
		default:
			return names[i] < names[j]
		}
	})
	return names
}

// Clone returns a copy whose hook map can be held without aliasing the caller's map.
func (d Descriptor) Clone() Descriptor {
	var hooks map[HookName]HookFunc
	if d.Hooks != nil {
		hooks = make(map[HookName]HookFunc, len(d.Hooks))
		for k, v := range d.Hooks {
			hooks[k] = v
		}
	}
	return Descriptor{Name: d.Name, Hooks: hooks}
}

// SameShape reports whether two descriptors share a name and declare the same hooks.
// Hook functions are not comparable, so shape is the closest notion of equality.
func (d Descriptor) SameShape(other Descriptor) bool {
	if d.Name != other.Name || len(d.Hooks) != len(other.Hooks) {
		return false
	}
	for h := range d.Hooks {
		if _, ok := other.Hooks[h]; !ok {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the descriptor.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s%v", d.Name, d.HookNames())
}
