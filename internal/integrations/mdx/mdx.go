// Package mdx enables the MDX authoring format. It registers page extensions during
// config:setup and analyzes matching sources during content:discovered: frontmatter,
// headings and a content fingerprint. It does not compile MDX.
package mdx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecore/internal/frontmatter"
	"git.home.luguber.info/inful/sitecore/internal/integration"
	"git.home.luguber.info/inful/sitecore/internal/logfields"
	"git.home.luguber.info/inful/sitecore/internal/markdown"
)

// Name is the integration name used in configurations.
const Name = "mdx"

// DataKeyAnalyzed is the shared-data key holding the number of entries analyzed.
const DataKeyAnalyzed = "mdx.analyzed"

// Options configures the integration.
type Options struct {
	// Extensions are treated as MDX pages. Default [".mdx"].
	Extensions []string

	// Fingerprint stamps each analyzed entry with a content fingerprint. Default true.
	Fingerprint bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Extensions: []string{".mdx"}, Fingerprint: true}
}

type rawOptions struct {
	Extensions  []string `mapstructure:"extensions"`
	Fingerprint *bool    `mapstructure:"fingerprint"`
}

// ParseOptions decodes configuration options and fills defaults.
func ParseOptions(raw map[string]any) (Options, error) {
	var ro rawOptions
	if err := integration.DecodeOptions(raw, &ro); err != nil {
		return Options{}, err
	}
	opts := DefaultOptions()
	if len(ro.Extensions) > 0 {
		opts.Extensions = nil
		for _, ext := range ro.Extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				return Options{}, fmt.Errorf("extensions: empty extension")
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			opts.Extensions = append(opts.Extensions, ext)
		}
	}
	if ro.Fingerprint != nil {
		opts.Fingerprint = *ro.Fingerprint
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

// New returns the mdx descriptor for opts.
func New(opts Options) integration.Descriptor {
	m := &mdx{opts: opts}
	return integration.New(Name, map[integration.HookName]integration.HookFunc{
		integration.HookConfigSetup:       m.configSetup,
		integration.HookContentDiscovered: m.contentDiscovered,
	})
}

type mdx struct {
	opts Options
}

func (m *mdx) configSetup(_ context.Context, hc *integration.HookContext) error {
	for _, ext := range m.opts.Extensions {
		hc.AddPageExtension(ext)
	}
	hc.Logger.Debug("Registered MDX page extensions",
		logfields.Integration(Name),
		slog.Any("extensions", m.opts.Extensions))
	return nil
}

func (m *mdx) contentDiscovered(ctx context.Context, hc *integration.HookContext) error {
	entries := hc.ContentWithExt(m.opts.Extensions...)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.analyze(entry); err != nil {
			return fmt.Errorf("%s: %w", entry.Path, err)
		}
	}
	hc.SetValue(DataKeyAnalyzed, len(entries))
	hc.Logger.Debug("Analyzed MDX content",
		logfields.Integration(Name),
		logfields.Count(len(entries)))
	return nil
}

func (m *mdx) analyze(entry *integration.ContentEntry) error {
	doc, err := frontmatter.Parse(entry.Source)
	if err != nil {
		return err
	}
	entry.Frontmatter = doc.Fields

	headings := markdown.ExtractHeadings(doc.Body)
	entry.Headings = make([]integration.Heading, len(headings))
	for i, h := range headings {
		entry.Headings[i] = integration.Heading{Depth: h.Depth, Text: h.Text, Slug: h.Slug}
	}

	if m.opts.Fingerprint {
		fp, err := Fingerprint(doc.Fields, doc.Body)
		if err != nil {
			return err
		}
		entry.Fingerprint = fp
	}
	return nil
}

// Fingerprint computes the content fingerprint of a parsed source. A fingerprint
// already stored in the frontmatter is excluded, so stamping a file does not change it.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	forHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField {
			continue
		}
		forHash[k] = v
	}

	serialized := ""
	if len(forHash) > 0 {
		// yaml.v3 sorts map keys, which keeps the hash independent of source order.
		out, err := yaml.Marshal(forHash)
		if err != nil {
			return "", fmt.Errorf("serialize frontmatter: %w", err)
		}
		serialized = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(serialized, string(body)), nil
}
