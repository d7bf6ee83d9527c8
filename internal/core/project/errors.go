// Package project orchestrates one full generation run: resolve the raw
// configuration, load the template catalog, select the output file set,
// render every file, and write the results through the filesystem
// collaborator. The run is a single forward path with no retries; the first
// error aborts it.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidTarget indicates the target directory path is empty or unusable.
	ErrInvalidTarget = errors.New("project: invalid target directory")

	// ErrTargetExists indicates the target directory already contains files
	// and --force was not given.
	ErrTargetExists = errors.New("project: target directory is not empty")
)
