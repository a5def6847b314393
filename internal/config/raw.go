package config

import (
	"reflect"

	"dario.cat/mergo"

	"git.home.luguber.info/inful/sitecore/internal/errors"
)

// RawConfig is a user-supplied configuration before normalization: a loosely typed
// mapping as produced by a config file decoder or written inline by Go callers.
type RawConfig map[string]any

// Recognized top-level keys.
const (
	KeySite          = "site"
	KeyBase          = "base"
	KeyRoot          = "root"
	KeySrcDir        = "srcDir"
	KeyPublicDir     = "publicDir"
	KeyOutDir        = "outDir"
	KeyTrailingSlash = "trailingSlash"
	KeyBuild         = "build"
	KeyCompressHTML  = "compressHTML"
	KeyIntegrations  = "integrations"

	// KeyBuildFormat is nested under KeyBuild.
	KeyBuildFormat = "format"
)

var knownKeys = map[string]struct{}{
	KeySite:          {},
	KeyBase:          {},
	KeyRoot:          {},
	KeySrcDir:        {},
	KeyPublicDir:     {},
	KeyOutDir:        {},
	KeyTrailingSlash: {},
	KeyBuild:         {},
	KeyCompressHTML:  {},
	KeyIntegrations:  {},
}

var knownBuildKeys = map[string]struct{}{
	KeyBuildFormat: {},
}

// Merge deep-merges override onto base and returns the result. Scalars in override win,
// nested maps are merged key by key and lists (integrations included) are concatenated
// base first. Neither argument is modified.
func Merge(base, override RawConfig) (RawConfig, error) {
	out, _ := deepCopy(map[string]any(base)).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	src, _ := deepCopy(map[string]any(override)).(map[string]any)
	if src == nil {
		return RawConfig(out), nil
	}
	if err := mergo.Merge(&out, src, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return nil, errors.MergeFailed(err)
	}
	return RawConfig(out), nil
}

// deepCopy copies nested maps and slices so merging never aliases caller data. Every
// list becomes []any, whatever its element type, so lists from different decoders or
// Go callers can be appended to each other.
func deepCopy(v any) any {
	switch t := v.(type) {
	case RawConfig:
		return deepCopy(map[string]any(t))
	case map[string]any:
		if t == nil {
			return nil
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []byte:
		return v
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return v
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = deepCopy(rv.Index(i).Interface())
	}
	return out
}
