package errors

import "fmt"

// Convenience constructors, one per configuration rule.

func MissingRequiredField(field string) *ConfigError {
	return &ConfigError{
		Kind:    KindMissingRequiredField,
		Field:   field,
		Message: "required configuration missing",
	}
}

func InvalidURL(field, value string, cause error) *ConfigError {
	return &ConfigError{
		Kind:    KindInvalidURL,
		Field:   field,
		Message: fmt.Sprintf("%q is not an absolute URL (scheme and host required)", value),
		Cause:   cause,
	}
}

func InvalidValue(field, reason string) *ConfigError {
	return &ConfigError{
		Kind:    KindInvalidValue,
		Field:   field,
		Message: reason,
	}
}

// InvalidHook reports a hook declared without an implementation.
func InvalidHook(integration, hook, reason string) *ConfigError {
	return &ConfigError{
		Kind:        KindInvalidValue,
		Integration: integration,
		Hook:        hook,
		Message:     reason,
	}
}

func DuplicateIntegration(name string, first, second int) *ConfigError {
	return (&ConfigError{
		Kind:        KindDuplicateIntegration,
		Integration: name,
		Field:       fmt.Sprintf("integrations[%d]", second),
		Message:     fmt.Sprintf("integration %q is declared more than once", name),
	}).WithContext("first_index", first).WithContext("second_index", second)
}

func UnknownHook(integration, hook string) *ConfigError {
	return &ConfigError{
		Kind:        KindUnknownHook,
		Integration: integration,
		Hook:        hook,
		Message:     fmt.Sprintf("integration %q declares unknown hook %q", integration, hook),
	}
}

func UnknownIntegration(field, name string) *ConfigError {
	return &ConfigError{
		Kind:        KindUnknownIntegration,
		Field:       field,
		Integration: name,
		Message:     fmt.Sprintf("no integration named %q is available", name),
	}
}

// IntegrationSetupFailed wraps a factory failure while resolving a named integration.
func IntegrationSetupFailed(field, name string, cause error) *ConfigError {
	return &ConfigError{
		Kind:        KindInvalidValue,
		Field:       field,
		Integration: name,
		Message:     "integration options rejected",
		Cause:       cause,
	}
}

// MergeFailed reports two configurations that cannot be layered onto each other.
func MergeFailed(cause error) *ConfigError {
	return &ConfigError{
		Kind:    KindInvalidValue,
		Message: "configurations cannot be merged",
		Cause:   cause,
	}
}
