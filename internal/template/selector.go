package template

import (
	"slices"
	"sort"

	"github.com/Sohail342/fastapi-template/internal/config"
)

// mandatoryPaths lists the output paths each template type cannot generate
// without. A filtered-out mandatory path is an authoring defect surfaced as
// ErrMissingRequiredFile.
var mandatoryPaths = map[config.TemplateType][]string{
	config.TypeMinimal: {
		"README.md",
		"app/main.py",
		"requirements.txt",
	},
	config.TypeAPIOnly: {
		"README.md",
		"app/api/routes.py",
		"app/core/config.py",
		"app/main.py",
		"requirements.txt",
	},
	config.TypeFullstack: {
		"README.md",
		"app/api/routes.py",
		"app/core/config.py",
		"app/main.py",
		"requirements.txt",
	},
}

// Selection maps each output-relative path to the single template file that
// produces it.
type Selection struct {
	winners map[string]File
}

// Paths returns the selected output paths in sorted order.
func (s Selection) Paths() []string {
	paths := make([]string, 0, len(s.winners))
	for path := range s.winners {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// File returns the template file selected for an output path.
func (s Selection) File(path string) (File, bool) {
	f, ok := s.winners[path]
	return f, ok
}

// Len returns the number of selected output paths.
func (s Selection) Len() int {
	return len(s.winners)
}

// Select computes the exact output file set for a resolved configuration.
// Filtering is pure set intersection over the catalog tags; the result is
// deterministic and independent of catalog order. At most one file wins per
// output path: groups with several candidates are disambiguated by exact
// backend match, and any remaining ambiguity fails with a ConflictError.
func Select(cfg config.ResolvedConfig, cat *Catalog) (Selection, error) {
	groups := make(map[string][]File)
	for _, file := range cat.Files() {
		if !applies(file, cfg) {
			continue
		}
		groups[file.Path] = append(groups[file.Path], file)
	}

	winners := make(map[string]File, len(groups))
	for path, candidates := range groups {
		winner, err := disambiguate(cfg, path, candidates)
		if err != nil {
			return Selection{}, err
		}
		winners[path] = winner
	}

	for _, path := range mandatoryPaths[cfg.TemplateType] {
		if _, ok := winners[path]; !ok {
			return Selection{}, &MissingFileError{Path: path, TemplateType: string(cfg.TemplateType)}
		}
	}

	return Selection{winners: winners}, nil
}

// applies reports whether a template file is a candidate under the
// template-type, backend, and feature filters.
func applies(file File, cfg config.ResolvedConfig) bool {
	if len(file.Types) > 0 && !slices.Contains(file.Types, cfg.TemplateType) {
		return false
	}
	if file.Backend != TagCommon && file.Backend != string(cfg.Backend) {
		return false
	}
	switch file.Feature {
	case FeatureAuth:
		return cfg.IncludeAuth
	case FeatureDatabase:
		return cfg.IncludeDatabase
	case FeatureDocker:
		return cfg.IncludeDocker
	case FeatureTests:
		return cfg.IncludeTests
	default:
		return true
	}
}

// disambiguate picks the single winner for an output path. A lone candidate
// wins outright; otherwise the candidate tagged with the configured backend
// wins over common-tagged ones. Two candidates with the same claim indicate
// an authoring defect.
func disambiguate(cfg config.ResolvedConfig, path string, candidates []File) (File, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	var exact []File
	for _, c := range candidates {
		if c.Backend == string(cfg.Backend) {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	sources := make([]string, len(candidates))
	for i, c := range candidates {
		sources[i] = c.Source
	}
	sort.Strings(sources)
	return File{}, &ConflictError{Path: path, Sources: sources}
}
