package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noop(context.Context, *HookContext) error { return nil }

func TestHooks_VocabularyOrder(t *testing.T) {
	hooks := Hooks()

	assert.Equal(t, []HookName{
		HookConfigSetup,
		HookConfigDone,
		HookContentDiscovered,
		HookRouteGenerated,
		HookBuildStart,
		HookBuildDone,
	}, hooks)

	for i, h := range hooks {
		assert.True(t, h.IsValid(), h)
		assert.Equal(t, i, h.Rank())
	}

	// Mutating the returned slice must not affect the vocabulary.
	hooks[0] = "tampered"
	assert.Equal(t, HookConfigSetup, Hooks()[0])
}

func TestHookName_Unknown(t *testing.T) {
	assert.False(t, HookName("astro:server:setup").IsValid())
	assert.Equal(t, -1, HookName("").Rank())
}

func TestDescriptor_HookNames(t *testing.T) {
	d := New("mixed", map[HookName]HookFunc{
		HookBuildDone:      noop,
		"zz:custom":        noop,
		HookConfigSetup:    noop,
		"aa:custom":        noop,
		HookRouteGenerated: noop,
	})

	assert.Equal(t, []HookName{HookConfigSetup, HookRouteGenerated, HookBuildDone, "aa:custom", "zz:custom"}, d.HookNames())
	assert.True(t, d.Implements(HookBuildDone))
	assert.False(t, d.Implements(HookBuildStart))
}

func TestDescriptor_CloneAndShape(t *testing.T) {
	original := New("mdx", map[HookName]HookFunc{HookConfigSetup: noop})
	clone := original.Clone()

	assert.True(t, original.SameShape(clone))

	clone.Hooks[HookBuildDone] = noop
	assert.False(t, original.Implements(HookBuildDone), "clone must not alias the hook map")
	assert.False(t, original.SameShape(clone))

	assert.True(t, Descriptor{Name: "empty"}.SameShape(Descriptor{Name: "empty"}))
	assert.False(t, Descriptor{Name: "a"}.SameShape(Descriptor{Name: "b"}))
}
