// Package normalization canonicalizes enumerated configuration values.
package normalization

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Enum provides type-safe string-to-enum normalization for a single configuration field.
// Lookups are case-insensitive and ignore surrounding whitespace.
type Enum[T ~string] struct {
	field        string
	validValues  map[string]T
	defaultValue T
	validKeys    []string // Cached for warnings and error messages
}

// NewEnum creates a normalizer for field accepting values, falling back to defaultValue.
func NewEnum[T ~string](field string, defaultValue T, values ...T) *Enum[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))

	for _, v := range values {
		key := Fold(string(v))
		normalized[key] = v
		validKeys = append(validKeys, key)
	}

	sort.Strings(validKeys)

	return &Enum[T]{
		field:        field,
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    validKeys,
	}
}

// Lookup converts raw to its canonical value. ok is false when raw is not recognized.
func (e *Enum[T]) Lookup(raw string) (T, bool) {
	v, ok := e.validValues[Fold(raw)]
	return v, ok
}

// Resolve converts raw to its canonical value. Blank input yields the default silently;
// unknown input yields the default plus a warning, and so does input that only matched
// after canonicalization.
func (e *Enum[T]) Resolve(raw string) (T, string) {
	if strings.TrimSpace(raw) == "" {
		return e.defaultValue, ""
	}
	v, ok := e.Lookup(raw)
	if !ok {
		return e.defaultValue, fmt.Sprintf("unknown %s '%s', defaulting to %s (valid: %s)",
			e.field, raw, e.defaultValue, strings.Join(e.validKeys, ", "))
	}
	if string(v) != raw {
		return v, fmt.Sprintf("normalized %s from '%s' to '%s'", e.field, raw, v)
	}
	return v, ""
}

// Default returns the fallback value.
func (e *Enum[T]) Default() T {
	return e.defaultValue
}

// IsValid reports whether value is one of the canonical values.
func (e *Enum[T]) IsValid(value T) bool {
	for _, v := range e.validValues {
		if v == value {
			return true
		}
	}
	return false
}

// ValidKeys returns all valid normalized keys, sorted.
func (e *Enum[T]) ValidKeys() []string {
	result := make([]string, len(e.validKeys))
	copy(result, e.validKeys)
	return result
}

// Fold trims and case-folds s. A fresh Caser is used per call since Casers are stateful.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
