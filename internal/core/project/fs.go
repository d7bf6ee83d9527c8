package project

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the write-side collaborator the generator hands rendered
// files to. Reads go through fs.FS; only the two mutating primitives are
// abstracted, so tests can capture output trees in memory.
type FileSystem interface {
	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem writing to the real disk.
func NewOSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (osFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}
