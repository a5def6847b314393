package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyIntegration = "integration"
	KeyHook        = "hook"
	KeyBuildID     = "build_id"
	KeyField       = "field"
	KeySite        = "site"
	KeyPath        = "path"
	KeyCount       = "count"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Integration(name string) slog.Attr { return slog.String(KeyIntegration, name) }
func Hook(name string) slog.Attr        { return slog.String(KeyHook, name) }
func BuildID(id string) slog.Attr       { return slog.String(KeyBuildID, id) }
func Field(f string) slog.Attr          { return slog.String(KeyField, f) }
func Site(url string) slog.Attr         { return slog.String(KeySite, url) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
