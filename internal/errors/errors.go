// Package errors provides the structured configuration error type (ConfigError)
// used by the normalizer and the integration registry, plus category and
// severity classification shared with hook runtime failures.
package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// ErrorCategory represents the category of an error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Failures raised by an integration hook while the build runs
	CategoryIntegration ErrorCategory = "integration"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// Kind identifies which configuration rule was violated.
type Kind string

const (
	KindMissingRequiredField Kind = "missing_required_field"
	KindInvalidURL           Kind = "invalid_url"
	KindDuplicateIntegration Kind = "duplicate_integration"
	KindUnknownHook          Kind = "unknown_hook"
	KindInvalidValue         Kind = "invalid_value"
	KindUnknownIntegration   Kind = "unknown_integration"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ContextFields carries structured context for ConfigError
type ContextFields map[string]any

// ConfigError is the single structured error returned when a configuration
// cannot be resolved or registered. Every ConfigError is fatal and not retryable.
type ConfigError struct {
	Kind        Kind          `json:"kind"`
	Field       string        `json:"field,omitempty"`
	Integration string        `json:"integration,omitempty"`
	Hook        string        `json:"hook,omitempty"`
	Message     string        `json:"message"`
	Cause       error         `json:"cause,omitempty"`
	Context     ContextFields `json:"context,omitempty"`
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s", CategoryConfig, e.Kind, e.Message)

	var where []string
	if e.Field != "" {
		where = append(where, "field="+e.Field)
	}
	if e.Integration != "" {
		where = append(where, "integration="+e.Integration)
	}
	if e.Hook != "" {
		where = append(where, "hook="+e.Hook)
	}
	if len(where) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(where, " "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Category always reports CategoryConfig.
func (e *ConfigError) Category() ErrorCategory {
	return CategoryConfig
}

// Severity always reports SeverityFatal: no partial configuration is usable.
func (e *ConfigError) Severity() ErrorSeverity {
	return SeverityFatal
}

// Retryable is always false; the configuration has to be corrected first.
func (e *ConfigError) Retryable() bool {
	return false
}

// WithContext adds context information to the error
func (e *ConfigError) WithContext(key string, value any) *ConfigError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return stdErrors.As(err, &ce)
}

// IsKind checks if an error is a ConfigError of the given kind
func IsKind(err error, kind Kind) bool {
	var ce *ConfigError
	if stdErrors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// KindOf extracts the kind from an error, or returns "" if it is not a ConfigError
func KindOf(err error) Kind {
	var ce *ConfigError
	if stdErrors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// GetCategory extracts the category from an error. Errors exposing a
// Category() method are asked directly; anything else is CategoryInternal.
func GetCategory(err error) ErrorCategory {
	var c interface{ Category() ErrorCategory }
	if stdErrors.As(err, &c) {
		return c.Category()
	}
	return CategoryInternal
}
