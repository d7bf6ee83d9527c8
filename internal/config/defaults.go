package config

// Default values applied for every field absent from a RawConfig.
const (
	DefaultTemplateType = TypeFullstack
	DefaultBackend      = BackendSQLAlchemy

	DefaultIncludeAuth     = true
	DefaultIncludeDatabase = true
	DefaultIncludeDocker   = true
	DefaultIncludeTests    = true
)

// NewDefaultResolvedConfig returns a ResolvedConfig with every field set to
// its compiled default. Equivalent to Resolve(nil) minus the error path.
func NewDefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		TemplateType:    DefaultTemplateType,
		Backend:         DefaultBackend,
		IncludeAuth:     DefaultIncludeAuth,
		IncludeDatabase: DefaultIncludeDatabase,
		IncludeDocker:   DefaultIncludeDocker,
		IncludeTests:    DefaultIncludeTests,
	}
}
