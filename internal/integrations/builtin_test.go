package integrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecore/internal/integration"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()
	assert.Equal(t, []string{"mdx", "sitemap"}, c.Names())

	d, err := c.Resolve("mdx", nil)
	require.NoError(t, err)
	assert.True(t, d.Implements(integration.HookConfigSetup))

	d, err = c.Resolve("sitemap", map[string]any{"filename": "map.xml"})
	require.NoError(t, err)
	assert.True(t, d.Implements(integration.HookBuildDone))

	_, err = c.Resolve("sitemap", map[string]any{"filename": "a/b.xml"})
	require.Error(t, err)

	_, err = c.Resolve("tailwind", nil)
	require.ErrorIs(t, err, integration.ErrNotFound)
}

func TestBuiltin_IndependentCatalogs(t *testing.T) {
	a := Builtin()
	require.NoError(t, a.Register("custom", func(map[string]any) (integration.Descriptor, error) {
		return integration.New("custom", nil), nil
	}))

	assert.True(t, a.Has("custom"))
	assert.False(t, Builtin().Has("custom"))
}
