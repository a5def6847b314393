package integration

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SiteConfig is the read-only view of the resolved configuration handed to hooks.
type SiteConfig interface {
	// Site returns the absolute site URL.
	Site() string

	// OutDir returns the build output directory.
	OutDir() string

	// AbsoluteURL joins route onto the site URL and base path.
	AbsoluteURL(route string) string
}

// Heading is a section heading found in a content entry.
type Heading struct {
	Depth int
	Text  string
	Slug  string
}

// ContentEntry is one discovered source file.
type ContentEntry struct {
	// Path is relative to the source directory, slash separated.
	Path string

	// Source is the raw file content.
	Source []byte

	// Frontmatter holds decoded metadata once an integration has parsed it.
	Frontmatter map[string]any

	// Headings holds the document outline once an integration has parsed it.
	Headings []Heading

	// Fingerprint is a content hash usable for incremental builds.
	Fingerprint string
}

// Ext returns the lower-cased file extension, including the dot.
func (e *ContentEntry) Ext() string {
	return strings.ToLower(filepath.Ext(e.Path))
}

// Route maps a URL path to the entry it renders.
type Route struct {
	Pattern string
	Entry   string
}

// HookContext carries per-build state through the hooks. It is owned by the build driver
// and passed to hooks one at a time; it is not safe for concurrent use.
type HookContext struct {
	// Config is the resolved site configuration.
	Config SiteConfig

	// Logger provides structured logging for hook operations.
	Logger *slog.Logger

	// BuildID uniquely identifies this build.
	BuildID string

	// Content lists discovered entries (populated before content:discovered).
	Content []*ContentEntry

	// Routes lists generated routes (populated before route:generated).
	Routes []Route

	// Data is a map for integrations to share data during the build.
	Data map[string]any

	pageExtensions []string
}

// NewHookContext creates a hook context for one build.
func NewHookContext(cfg SiteConfig, logger *slog.Logger) *HookContext {
	if logger == nil {
		logger = slog.Default()
	}
	return &HookContext{
		Config:         cfg,
		Logger:         logger,
		BuildID:        uuid.NewString(),
		Data:           make(map[string]any),
		pageExtensions: []string{".md"},
	}
}

// AddPageExtension registers a file extension the build should treat as a page.
// Extensions are lower-cased and dot-prefixed; duplicates are ignored.
func (hc *HookContext) AddPageExtension(ext string) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, existing := range hc.pageExtensions {
		if existing == ext {
			return
		}
	}
	hc.pageExtensions = append(hc.pageExtensions, ext)
}

// PageExtensions returns the registered page extensions in registration order.
func (hc *HookContext) PageExtensions() []string {
	out := make([]string, len(hc.pageExtensions))
	copy(out, hc.pageExtensions)
	return out
}

// IsPage reports whether path has a registered page extension.
func (hc *HookContext) IsPage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range hc.pageExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ContentWithExt returns the discovered entries whose extension is in exts.
func (hc *HookContext) ContentWithExt(exts ...string) []*ContentEntry {
	var out []*ContentEntry
	for _, entry := range hc.Content {
		ext := entry.Ext()
		for _, want := range exts {
			if strings.EqualFold(ext, want) {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

// SetValue stores a value in the shared data map.
func (hc *HookContext) SetValue(key string, value any) {
	if hc.Data == nil {
		hc.Data = make(map[string]any)
	}
	hc.Data[key] = value
}

// GetValue retrieves a value from the shared data map.
// Returns nil if the key doesn't exist.
func (hc *HookContext) GetValue(key string) any {
	return hc.Data[key]
}

// GetString retrieves a string value from the shared data map.
// Returns empty string if the key doesn't exist or is not a string.
func (hc *HookContext) GetString(key string) string {
	if v, ok := hc.Data[key].(string); ok {
		return v
	}
	return ""
}

// GetBool retrieves a boolean value from the shared data map.
// Returns false if the key doesn't exist or is not a boolean.
func (hc *HookContext) GetBool(key string) bool {
	if v, ok := hc.Data[key].(bool); ok {
		return v
	}
	return false
}
