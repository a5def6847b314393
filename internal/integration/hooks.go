package integration

import "context"

// HookName identifies a lifecycle extension point of the build.
type HookName string

const (
	// HookConfigSetup runs first; integrations contribute page extensions and shared data.
	HookConfigSetup HookName = "config:setup"

	// HookConfigDone runs once every integration has seen config:setup.
	HookConfigDone HookName = "config:done"

	// HookContentDiscovered runs after the content source has been scanned.
	HookContentDiscovered HookName = "content:discovered"

	// HookRouteGenerated runs after routes have been computed for the discovered content.
	HookRouteGenerated HookName = "route:generated"

	// HookBuildStart runs before pages are rendered.
	HookBuildStart HookName = "build:start"

	// HookBuildDone runs after all output has been written.
	HookBuildDone HookName = "build:done"
)

// hookOrder is the fixed category order; within one integration bindings follow it.
var hookOrder = []HookName{
	HookConfigSetup,
	HookConfigDone,
	HookContentDiscovered,
	HookRouteGenerated,
	HookBuildStart,
	HookBuildDone,
}

var hookRank = func() map[HookName]int {
	m := make(map[HookName]int, len(hookOrder))
	for i, h := range hookOrder {
		m[h] = i
	}
	return m
}()

// Hooks returns the complete hook vocabulary in category order.
func Hooks() []HookName {
	out := make([]HookName, len(hookOrder))
	copy(out, hookOrder)
	return out
}

// IsValid returns true if the hook name is part of the vocabulary.
func (h HookName) IsValid() bool {
	_, ok := hookRank[h]
	return ok
}

// Rank returns the category position of h, or -1 for unknown names.
func (h HookName) Rank() int {
	if r, ok := hookRank[h]; ok {
		return r
	}
	return -1
}

// String returns the string representation of the hook name.
func (h HookName) String() string {
	return string(h)
}

// HookFunc is a hook implementation. It may read and extend hc but must not retain it
// past the call.
type HookFunc func(ctx context.Context, hc *HookContext) error
