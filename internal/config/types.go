package config

import "slices"

// TemplateType selects the overall project shape.
type TemplateType string

const (
	TypeMinimal   TemplateType = "minimal"
	TypeAPIOnly   TemplateType = "api_only"
	TypeFullstack TemplateType = "fullstack"
)

// IsValid reports whether the template type is one of the supported shapes.
func (t TemplateType) IsValid() bool {
	return slices.Contains(TemplateTypes(), t)
}

// TemplateTypes returns all supported template types.
func TemplateTypes() []TemplateType {
	return []TemplateType{TypeMinimal, TypeAPIOnly, TypeFullstack}
}

// Backend selects the persistence technology the generated project targets.
type Backend string

const (
	BackendSQLAlchemy Backend = "sqlalchemy"
	BackendBeanie     Backend = "beanie"
)

// IsValid reports whether the backend is one of the supported engines.
func (b Backend) IsValid() bool {
	return slices.Contains(Backends(), b)
}

// Backends returns all supported persistence backends.
func Backends() []Backend {
	return []Backend{BackendSQLAlchemy, BackendBeanie}
}

// RawConfig is the untrusted option mapping supplied by the caller
// (CLI flags, wizard answers, or a YAML config file). It may be partial;
// unrecognized keys are ignored for forward compatibility.
type RawConfig map[string]any

// Recognized RawConfig keys. Anything else is silently skipped.
const (
	KeyTemplateType    = "template_type"
	KeyBackend         = "backend"
	KeyIncludeAuth     = "include_auth"
	KeyIncludeDatabase = "include_database"
	KeyIncludeDocker   = "include_docker"
	KeyIncludeTests    = "include_tests"
)

// ResolvedConfig is the fully-populated, validated configuration that every
// downstream component receives. It is created once per generation run by
// Resolve and must be treated as immutable afterward.
type ResolvedConfig struct {
	TemplateType    TemplateType
	Backend         Backend
	IncludeAuth     bool
	IncludeDatabase bool
	IncludeDocker   bool
	IncludeTests    bool
}
