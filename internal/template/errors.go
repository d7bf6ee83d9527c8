// Package template implements the configuration-to-file-set resolution core:
// a read-only catalog over the template tree, a selector that computes the
// exact output file set for a resolved configuration, and a renderer that
// substitutes placeholder tokens so that no template syntax survives into
// generated output.
package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog loading, selection, and rendering.
var (
	// ErrCatalogUnreadable indicates the template root could not be walked or read.
	ErrCatalogUnreadable = errors.New("template: catalog unreadable")

	// ErrMalformedTemplatePath indicates a template file whose tags cannot be
	// parsed from its position in the tree. This is a packaging defect.
	ErrMalformedTemplatePath = errors.New("template: malformed template path")

	// ErrSelectionConflict indicates two or more template files competing for
	// the same output path after backend disambiguation. This is a template
	// authoring defect, not a user error.
	ErrSelectionConflict = errors.New("template: selection conflict")

	// ErrMissingRequiredFile indicates a path the template type requires was
	// produced by no candidate after filtering.
	ErrMissingRequiredFile = errors.New("template: missing required file")

	// ErrUnknownPlaceholder indicates a placeholder token with no resolved value.
	ErrUnknownPlaceholder = errors.New("template: unknown placeholder")

	// ErrUnexpandedToken indicates placeholder syntax surviving in rendered
	// output. Rendering fails loudly rather than emit a template artifact.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")
)

// ConflictError names the contested output path and the template sources
// competing for it.
type ConflictError struct {
	Path    string
	Sources []string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: output path %q claimed by: %s",
		ErrSelectionConflict, e.Path, strings.Join(e.Sources, ", "))
}

// Unwrap returns ErrSelectionConflict for errors.Is support.
func (e *ConflictError) Unwrap() error {
	return ErrSelectionConflict
}

// MissingFileError names the mandatory output path no candidate produced.
type MissingFileError struct {
	Path         string
	TemplateType string
}

// Error implements the error interface.
func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%v: %q required by template type %q",
		ErrMissingRequiredFile, e.Path, e.TemplateType)
}

// Unwrap returns ErrMissingRequiredFile for errors.Is support.
func (e *MissingFileError) Unwrap() error {
	return ErrMissingRequiredFile
}
