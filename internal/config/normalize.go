package config

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitecore/internal/errors"
	"git.home.luguber.info/inful/sitecore/internal/integration"
)

// IntegrationResolver builds integrations that a configuration names instead of
// providing inline. *integration.Catalog implements it.
type IntegrationResolver interface {
	Resolve(name string, options map[string]any) (integration.Descriptor, error)
}

// Option customizes Normalize.
type Option func(*normalizer)

// WithResolver enables by-name integration entries.
func WithResolver(r IntegrationResolver) Option {
	return func(n *normalizer) { n.resolver = r }
}

// Normalize validates raw, fills defaults and returns the immutable resolved form.
// It stops at the first violation and returns it as a *errors.ConfigError; checks run
// in a fixed order (site, optional fields, integrations) so the reported error is
// deterministic. Normalize does no I/O.
func Normalize(raw RawConfig, opts ...Option) (*ResolvedConfig, error) {
	n := &normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n.normalize(raw)
}

// normalizer carries options and accumulated warnings through one Normalize call.
type normalizer struct {
	resolver IntegrationResolver
	warnings []string
}

func (n *normalizer) normalize(raw RawConfig) (*ResolvedConfig, error) {
	site, siteURL, err := normalizeSite(raw[KeySite])
	if err != nil {
		return nil, err
	}

	c := &ResolvedConfig{site: site, siteURL: siteURL}

	if c.base, err = n.base(raw); err != nil {
		return nil, err
	}
	dirs := []struct {
		key string
		def string
		dst *string
	}{
		{KeyRoot, DefaultRoot, &c.root},
		{KeySrcDir, DefaultSrcDir, &c.srcDir},
		{KeyPublicDir, DefaultPublicDir, &c.publicDir},
		{KeyOutDir, DefaultOutDir, &c.outDir},
	}
	for _, d := range dirs {
		if *d.dst, err = n.dir(raw, d.key, d.def); err != nil {
			return nil, err
		}
	}
	if c.trailingSlash, err = n.trailingSlash(raw); err != nil {
		return nil, err
	}
	if c.buildFormat, err = n.build(raw); err != nil {
		return nil, err
	}
	if c.compressHTML, err = optionalBool(raw, KeyCompressHTML, DefaultCompressHTML); err != nil {
		return nil, err
	}
	if c.integrations, err = n.integrations(raw[KeyIntegrations]); err != nil {
		return nil, err
	}

	n.warnUnknownKeys("", raw, knownKeys)
	c.warnings = n.warnings
	return c, nil
}

// normalizeSite validates the site identity: a non-blank absolute URL with scheme and host.
func normalizeSite(v any) (string, *url.URL, error) {
	if v == nil {
		return "", nil, errors.MissingRequiredField(KeySite)
	}
	s, ok := v.(string)
	if !ok {
		return "", nil, errors.InvalidURL(KeySite, fmt.Sprint(v), fmt.Errorf("expected a string, got %T", v))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, errors.MissingRequiredField(KeySite)
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", nil, errors.InvalidURL(KeySite, s, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", nil, errors.InvalidURL(KeySite, s, nil)
	}
	return s, u, nil
}

func (n *normalizer) base(raw RawConfig) (string, error) {
	s, ok, err := optionalString(raw, KeyBase)
	if err != nil || !ok || strings.TrimSpace(s) == "" {
		return DefaultBase, err
	}
	cleaned := path.Clean("/" + strings.TrimSpace(s))
	n.warnChanged(KeyBase, s, cleaned)
	return cleaned, nil
}

func (n *normalizer) dir(raw RawConfig, key, def string) (string, error) {
	s, ok, err := optionalString(raw, key)
	if err != nil || !ok || strings.TrimSpace(s) == "" {
		return def, err
	}
	cleaned := filepath.Clean(strings.TrimSpace(s))
	n.warnChanged(key, s, cleaned)
	return cleaned, nil
}

func (n *normalizer) trailingSlash(raw RawConfig) (TrailingSlash, error) {
	s, _, err := optionalString(raw, KeyTrailingSlash)
	if err != nil {
		return "", err
	}
	v, warning := trailingSlashes.Resolve(s)
	n.warn(warning)
	return v, nil
}

func (n *normalizer) build(raw RawConfig) (BuildFormat, error) {
	v, present := raw[KeyBuild]
	if !present || v == nil {
		return buildFormats.Default(), nil
	}
	m, ok := asMap(v)
	if !ok {
		return "", errors.InvalidValue(KeyBuild, fmt.Sprintf("expected a mapping, got %T", v))
	}
	field := KeyBuild + "." + KeyBuildFormat
	s, _, err := optionalString(m, KeyBuildFormat)
	if err != nil {
		return "", errors.InvalidValue(field, fmt.Sprintf("expected a string, got %T", m[KeyBuildFormat]))
	}
	format, warning := buildFormats.Resolve(s)
	n.warn(warning)
	n.warnUnknownKeys(KeyBuild+".", m, knownBuildKeys)
	return format, nil
}

func (n *normalizer) warn(w string) {
	if w != "" {
		n.warnings = append(n.warnings, w)
	}
}

func (n *normalizer) warnChanged(field, from, to string) {
	if from != to {
		n.warnings = append(n.warnings, fmt.Sprintf("normalized %s from '%s' to '%s'", field, from, to))
	}
}

func (n *normalizer) warnUnknownKeys(prefix string, m map[string]any, known map[string]struct{}) {
	var unknown []string
	for k := range m {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		n.warnings = append(n.warnings, fmt.Sprintf("ignoring unknown option '%s%s'", prefix, k))
	}
}

// optionalString reads key from m. A nil value counts as absent.
func optionalString(m map[string]any, key string) (string, bool, error) {
	v, present := m[key]
	if !present || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, errors.InvalidValue(key, fmt.Sprintf("expected a string, got %T", v))
	}
	return s, true, nil
}

func optionalBool(m map[string]any, key string, def bool) (bool, error) {
	v, present := m[key]
	if !present || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, errors.InvalidValue(key, fmt.Sprintf("expected a boolean, got %T", v))
	}
	return b, nil
}

// asMap accepts the map shapes produced by Go literals and the supported decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RawConfig:
		return m, true
	default:
		return nil, false
	}
}
