// Package integrations bundles the integrations that ship with sitecore.
package integrations

import (
	"git.home.luguber.info/inful/sitecore/internal/integration"
	"git.home.luguber.info/inful/sitecore/internal/integrations/mdx"
	"git.home.luguber.info/inful/sitecore/internal/integrations/sitemap"
)

// Builtin returns a new catalog with every bundled integration registered. Each call
// returns an independent catalog, so callers may add their own factories to it.
func Builtin() *integration.Catalog {
	c := integration.NewCatalog()
	c.MustRegister(mdx.Name, mdx.Factory)
	c.MustRegister(sitemap.Name, sitemap.Factory)
	return c
}
