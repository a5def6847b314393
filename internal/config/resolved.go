package config

import (
	"net/url"
	"path"
	"strings"

	"git.home.luguber.info/inful/sitecore/internal/foundation/normalization"
	"git.home.luguber.info/inful/sitecore/internal/integration"
)

// TrailingSlash controls whether generated URLs end in a slash.
type TrailingSlash string

const (
	TrailingSlashIgnore TrailingSlash = "ignore"
	TrailingSlashAlways TrailingSlash = "always"
	TrailingSlashNever  TrailingSlash = "never"
)

// BuildFormat controls how page output files are laid out.
type BuildFormat string

const (
	BuildFormatDirectory BuildFormat = "directory" // about/index.html
	BuildFormatFile      BuildFormat = "file"      // about.html
	BuildFormatPreserve  BuildFormat = "preserve"  // mirrors the source layout
)

var (
	trailingSlashes = normalization.NewEnum(KeyTrailingSlash, TrailingSlashIgnore,
		TrailingSlashIgnore, TrailingSlashAlways, TrailingSlashNever)
	buildFormats = normalization.NewEnum(KeyBuild+"."+KeyBuildFormat, BuildFormatDirectory,
		BuildFormatDirectory, BuildFormatFile, BuildFormatPreserve)
)

// Defaults applied to absent optional fields.
const (
	DefaultBase         = "/"
	DefaultRoot         = "."
	DefaultSrcDir       = "src"
	DefaultPublicDir    = "public"
	DefaultOutDir       = "dist"
	DefaultCompressHTML = true
)

// ResolvedConfig is the validated, defaulted form of a RawConfig. It is never modified
// after Normalize returns, so it can be shared across goroutines without locking;
// getters hand out copies of anything mutable.
type ResolvedConfig struct {
	site          string
	siteURL       *url.URL
	base          string
	root          string
	srcDir        string
	publicDir     string
	outDir        string
	trailingSlash TrailingSlash
	buildFormat   BuildFormat
	compressHTML  bool
	integrations  []integration.Descriptor
	warnings      []string
}

var _ integration.SiteConfig = (*ResolvedConfig)(nil)

// Site returns the absolute site URL as configured.
func (c *ResolvedConfig) Site() string { return c.site }

// SiteURL returns a copy of the parsed site URL.
func (c *ResolvedConfig) SiteURL() *url.URL {
	u := *c.siteURL
	return &u
}

func (c *ResolvedConfig) Base() string                 { return c.base }
func (c *ResolvedConfig) Root() string                 { return c.root }
func (c *ResolvedConfig) SrcDir() string               { return c.srcDir }
func (c *ResolvedConfig) PublicDir() string            { return c.publicDir }
func (c *ResolvedConfig) OutDir() string               { return c.outDir }
func (c *ResolvedConfig) TrailingSlash() TrailingSlash { return c.trailingSlash }
func (c *ResolvedConfig) BuildFormat() BuildFormat     { return c.buildFormat }
func (c *ResolvedConfig) CompressHTML() bool           { return c.compressHTML }

// Integrations returns the activated integrations in declaration order.
func (c *ResolvedConfig) Integrations() []integration.Descriptor {
	out := make([]integration.Descriptor, len(c.integrations))
	for i, d := range c.integrations {
		out[i] = d.Clone()
	}
	return out
}

// Warnings returns the non-fatal adjustments made during normalization.
func (c *ResolvedConfig) Warnings() []string {
	out := make([]string, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// AbsoluteURL joins route onto the site URL and base path and applies the
// trailing-slash policy. A route naming a file (an extension and no trailing slash)
// keeps its form; a route ending in "/" is a directory even when its last segment
// contains a dot.
func (c *ResolvedConfig) AbsoluteURL(route string) string {
	u := c.SiteURL()
	u.RawQuery = ""
	u.Fragment = ""

	hadSlash := strings.HasSuffix(route, "/")
	p := path.Join("/", u.Path, c.base, route)
	isFile := !hadSlash && path.Ext(p) != ""

	if p != "/" && !isFile {
		switch c.trailingSlash {
		case TrailingSlashAlways:
			p += "/"
		case TrailingSlashNever:
		default:
			if hadSlash {
				p += "/"
			}
		}
	}
	u.Path = p
	return u.String()
}

// ToRaw returns the raw form of the resolved configuration. Normalizing it yields a
// configuration Equal to c.
func (c *ResolvedConfig) ToRaw() RawConfig {
	integrations := make([]any, len(c.integrations))
	for i, d := range c.integrations {
		integrations[i] = d.Clone()
	}
	return RawConfig{
		KeySite:          c.site,
		KeyBase:          c.base,
		KeyRoot:          c.root,
		KeySrcDir:        c.srcDir,
		KeyPublicDir:     c.publicDir,
		KeyOutDir:        c.outDir,
		KeyTrailingSlash: string(c.trailingSlash),
		KeyBuild: map[string]any{
			KeyBuildFormat: string(c.buildFormat),
		},
		KeyCompressHTML: c.compressHTML,
		KeyIntegrations: integrations,
	}
}

// Equal reports whether two configurations resolve to the same settings. Integrations
// are compared by name and declared hooks; warnings are ignored.
func (c *ResolvedConfig) Equal(other *ResolvedConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.site != other.site ||
		c.base != other.base ||
		c.root != other.root ||
		c.srcDir != other.srcDir ||
		c.publicDir != other.publicDir ||
		c.outDir != other.outDir ||
		c.trailingSlash != other.trailingSlash ||
		c.buildFormat != other.buildFormat ||
		c.compressHTML != other.compressHTML ||
		len(c.integrations) != len(other.integrations) {
		return false
	}
	for i := range c.integrations {
		if !c.integrations[i].SameShape(other.integrations[i]) {
			return false
		}
	}
	return true
}
