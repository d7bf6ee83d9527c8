package template

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/Sohail342/fastapi-template/internal/config"
)

// TagCommon marks a template file that applies regardless of template type
// or backend, depending on which path segment carries it.
const TagCommon = "common"

// Feature names a file group gated by a boolean configuration flag.
// FeatureCore files are always candidates.
type Feature string

const (
	FeatureCore     Feature = "core"
	FeatureAuth     Feature = "auth"
	FeatureDatabase Feature = "database"
	FeatureDocker   Feature = "docker"
	FeatureTests    Feature = "tests"
)

// File is a single source artifact in the template tree: an output-relative
// path, the applicability tags parsed from its position, and raw content with
// substitution placeholders.
type File struct {
	// Source is the file's path inside the template tree, kept for diagnostics.
	Source string

	// Path is the output-relative path the file targets.
	Path string

	// Types lists the template types the file belongs to. Empty means the
	// file applies to all types.
	Types []config.TemplateType

	// Backend is the backend the file is written for, or TagCommon.
	Backend string

	// Feature is the flag group the file requires. FeatureCore files are
	// unconditional.
	Feature Feature

	// Content is the raw template content.
	Content []byte
}

// Catalog is the ordered, read-only collection of template files loaded once
// per generation run.
type Catalog struct {
	files []File
}

// Files returns the catalog entries in load order.
func (c *Catalog) Files() []File {
	return c.files
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.files)
}

// LoadCatalog walks the template tree once and parses each file's tags from
// its position. The fixed layout is
//
//	<type>/<backend>/<feature>/<output path...>
//
// where <type> is common, minimal, api_only, or fullstack; <backend> is
// common, sqlalchemy, or beanie; and <feature> is core, auth, database,
// docker, or tests. Deeper segments form the output-relative path.
//
// In production fsys comes from go:embed; in tests use testing/fstest.MapFS.
// The catalog never mutates source files.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	cat := &Catalog{}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCatalogUnreadable, path, err)
		}
		if path == "." || entry.IsDir() {
			return nil
		}

		file, parseErr := parseTemplatePath(path)
		if parseErr != nil {
			return parseErr
		}

		content, readErr := fs.ReadFile(fsys, path)
		if readErr != nil {
			return fmt.Errorf("%w: %s: %v", ErrCatalogUnreadable, path, readErr)
		}
		file.Content = content

		cat.files = append(cat.files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// parseTemplatePath extracts applicability tags from a tree position.
func parseTemplatePath(path string) (File, error) {
	segments := strings.Split(path, "/")
	if len(segments) < 4 {
		return File{}, fmt.Errorf("%w: %q: want <type>/<backend>/<feature>/<output path>", ErrMalformedTemplatePath, path)
	}

	file := File{
		Source: path,
		Path:   strings.Join(segments[3:], "/"),
	}

	switch typeTag := segments[0]; {
	case typeTag == TagCommon:
		// No restriction: applies to every template type.
	case config.TemplateType(typeTag).IsValid():
		file.Types = []config.TemplateType{config.TemplateType(typeTag)}
	default:
		return File{}, fmt.Errorf("%w: %q: unknown template type tag %q", ErrMalformedTemplatePath, path, typeTag)
	}

	backendTag := segments[1]
	if backendTag != TagCommon && !config.Backend(backendTag).IsValid() {
		return File{}, fmt.Errorf("%w: %q: unknown backend tag %q", ErrMalformedTemplatePath, path, backendTag)
	}
	file.Backend = backendTag

	switch feature := Feature(segments[2]); feature {
	case FeatureCore, FeatureAuth, FeatureDatabase, FeatureDocker, FeatureTests:
		file.Feature = feature
	default:
		return File{}, fmt.Errorf("%w: %q: unknown feature tag %q", ErrMalformedTemplatePath, path, segments[2])
	}

	return file, nil
}
