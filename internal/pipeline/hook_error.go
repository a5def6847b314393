package pipeline

import (
	"fmt"

	"git.home.luguber.info/inful/sitecore/internal/errors"
	"git.home.luguber.info/inful/sitecore/internal/integration"
)

// HookError represents an error returned by an integration hook.
type HookError struct {
	// Integration identifies which integration failed.
	Integration string

	// Hook is the category that was running.
	Hook integration.HookName

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	return fmt.Sprintf("integration %s failed during %s: %v", e.Integration, e.Hook, e.Err)
}

// Unwrap returns the underlying error for error inspection.
func (e *HookError) Unwrap() error {
	return e.Err
}

// Category classifies hook failures for errors.GetCategory.
func (e *HookError) Category() errors.ErrorCategory {
	return errors.CategoryIntegration
}
