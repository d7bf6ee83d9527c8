// Package wizard provides the interactive prompt flow that collects a raw
// generation configuration when the CLI runs on a terminal.
package wizard

import (
	"errors"

	"github.com/Sohail342/fastapi-template/internal/config"
)

// Result holds the user's selections. Zero-value booleans are meaningful, so
// the wizard always fills every field.
type Result struct {
	ProjectName     string
	TemplateType    string
	Backend         string
	IncludeAuth     bool
	IncludeDatabase bool
	IncludeDocker   bool
	IncludeTests    bool
}

// RawConfig converts the selections into the mapping the resolver consumes.
func (r *Result) RawConfig() config.RawConfig {
	return config.RawConfig{
		config.KeyTemplateType:    r.TemplateType,
		config.KeyBackend:         r.Backend,
		config.KeyIncludeAuth:     r.IncludeAuth,
		config.KeyIncludeDatabase: r.IncludeDatabase,
		config.KeyIncludeDocker:   r.IncludeDocker,
		config.KeyIncludeTests:    r.IncludeTests,
	}
}

// ErrCancelled indicates the user aborted the wizard.
var ErrCancelled = errors.New("wizard: cancelled by user")
