// Package sitemap writes a sitemap.xml of the generated routes using the site identity
// for absolute URLs.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitecore/internal/integration"
	"git.home.luguber.info/inful/sitecore/internal/logfields"
)

// Name is the integration name used in configurations.
const Name = "sitemap"

// Shared-data keys.
const (
	DataKeyRoutes = "sitemap.routes"
	DataKeyPath   = "sitemap.path"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Options configures the integration.
type Options struct {
	// Filename is written inside the output directory. Default "sitemap.xml".
	Filename string

	// Exclude lists route prefixes left out of the sitemap.
	Exclude []string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Filename: "sitemap.xml"}
}

type rawOptions struct {
	Filename string   `mapstructure:"filename"`
	Exclude  []string `mapstructure:"exclude"`
}

// ParseOptions decodes configuration options and fills defaults.
func ParseOptions(raw map[string]any) (Options, error) {
	var ro rawOptions
	if err := integration.DecodeOptions(raw, &ro); err != nil {
		return Options{}, err
	}
	opts := DefaultOptions()
	if name := strings.TrimSpace(ro.Filename); name != "" {
		if name != filepath.Base(name) || name == "." || name == ".." {
			return Options{}, fmt.Errorf("filename %q must be a plain file name", ro.Filename)
		}
		opts.Filename = name
	}
	for _, prefix := range ro.Exclude {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		if !strings.HasPrefix(prefix, "/") {
			prefix = "/" + prefix
		}
		opts.Exclude = append(opts.Exclude, prefix)
	}
	return opts, nil
}

// Factory builds the descriptor from configuration options.
func Factory(raw map[string]any) (integration.Descriptor, error) {
	opts, err := ParseOptions(raw)
	if err != nil {
		return integration.Descriptor{}, err
	}
	return New(opts), nil
}

// New returns the sitemap descriptor for opts. The descriptor keeps no per-build state;
// collected routes travel in the hook context.
func New(opts Options) integration.Descriptor {
	s := &sitemap{opts: opts}
	return integration.New(Name, map[integration.HookName]integration.HookFunc{
		integration.HookRouteGenerated: s.routeGenerated,
		integration.HookBuildDone:      s.buildDone,
	})
}

type sitemap struct {
	opts Options
}

func (s *sitemap) routeGenerated(_ context.Context, hc *integration.HookContext) error {
	seen := make(map[string]struct{}, len(hc.Routes))
	routes := make([]string, 0, len(hc.Routes))
	for _, r := range hc.Routes {
		if !s.include(r.Pattern) {
			continue
		}
		if _, dup := seen[r.Pattern]; dup {
			continue
		}
		seen[r.Pattern] = struct{}{}
		routes = append(routes, r.Pattern)
	}
	sort.Strings(routes)
	hc.SetValue(DataKeyRoutes, routes)
	return nil
}

// include reports whether a route belongs in the sitemap: static routes only, minus
// excluded prefixes.
func (s *sitemap) include(route string) bool {
	if route == "" || strings.ContainsAny(route, "[]") {
		return false
	}
	for _, prefix := range s.opts.Exclude {
		prefix = strings.TrimSuffix(prefix, "/")
		if route == prefix || strings.HasPrefix(route, prefix+"/") {
			return false
		}
	}
	return true
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

func (s *sitemap) buildDone(_ context.Context, hc *integration.HookContext) error {
	routes, _ := hc.GetValue(DataKeyRoutes).([]string)

	set := urlSet{Xmlns: xmlns, URLs: make([]urlEntry, 0, len(routes))}
	for _, r := range routes {
		set.URLs = append(set.URLs, urlEntry{Loc: hc.Config.AbsoluteURL(r)})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}

	dir := hc.Config.OutDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	p := filepath.Join(dir, s.opts.Filename)
	data := append([]byte(xml.Header), out...)
	data = append(data, '\n')
	if err := os.WriteFile(p, data, 0o644); err != nil { //nolint:gosec // public site output, non-sensitive
		return fmt.Errorf("write sitemap: %w", err)
	}

	hc.SetValue(DataKeyPath, p)
	hc.Logger.Info("Wrote sitemap",
		logfields.Integration(Name),
		logfields.Path(p),
		logfields.Count(len(routes)))
	return nil
}
