// Package config resolves the raw user configuration for a generation run
// into a single validated, fully-defaulted ResolvedConfig. Resolution is a
// pure function: it validates enum values, fills defaults for absent fields,
// and applies the auth-requires-database dependency in one fixed pass.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration resolution.
var (
	// ErrInvalidTemplateType indicates an unsupported template_type value.
	ErrInvalidTemplateType = errors.New("config: invalid template_type, must be one of: minimal, api_only, fullstack")

	// ErrInvalidBackend indicates an unsupported backend value.
	ErrInvalidBackend = errors.New("config: invalid backend, must be one of: sqlalchemy, beanie")

	// ErrInvalidFlagValue indicates a feature flag field holding a non-boolean value.
	ErrInvalidFlagValue = errors.New("config: feature flag must be a boolean")

	// ErrConfigFileUnreadable indicates the optional config file could not be read.
	ErrConfigFileUnreadable = errors.New("config: config file unreadable")

	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// FieldError reports a single invalid configuration field with its
// offending value, so callers can surface it verbatim without inspecting
// internals. It wraps one of the sentinel errors for errors.Is support.
type FieldError struct {
	Field   string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v (got: %v)", e.Field, e.Wrapped, e.Value)
}

// Unwrap returns the underlying sentinel error.
func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
