package config

// Resolve validates raw, fills defaults for every absent field, and applies
// the one fixed dependency rule: include_auth forces include_database, since
// generated auth code cannot exist without a persistence layer.
//
// Resolve is pure: the same RawConfig always yields the same ResolvedConfig,
// and raw is never mutated. Unrecognized keys are ignored.
func Resolve(raw RawConfig) (ResolvedConfig, error) {
	cfg := NewDefaultResolvedConfig()

	if v, ok := raw[KeyTemplateType]; ok {
		s, isStr := v.(string)
		if !isStr || !TemplateType(s).IsValid() {
			return ResolvedConfig{}, &FieldError{Field: KeyTemplateType, Value: v, Wrapped: ErrInvalidTemplateType}
		}
		cfg.TemplateType = TemplateType(s)
	}

	if v, ok := raw[KeyBackend]; ok {
		s, isStr := v.(string)
		if !isStr || !Backend(s).IsValid() {
			return ResolvedConfig{}, &FieldError{Field: KeyBackend, Value: v, Wrapped: ErrInvalidBackend}
		}
		cfg.Backend = Backend(s)
	}

	flags := []struct {
		key  string
		dest *bool
	}{
		{KeyIncludeAuth, &cfg.IncludeAuth},
		{KeyIncludeDatabase, &cfg.IncludeDatabase},
		{KeyIncludeDocker, &cfg.IncludeDocker},
		{KeyIncludeTests, &cfg.IncludeTests},
	}
	for _, f := range flags {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		b, isBool := v.(bool)
		if !isBool {
			return ResolvedConfig{}, &FieldError{Field: f.key, Value: v, Wrapped: ErrInvalidFlagValue}
		}
		*f.dest = b
	}

	// Dependency pass, applied after defaulting. Auth requires persistence.
	if cfg.IncludeAuth {
		cfg.IncludeDatabase = true
	}

	return cfg, nil
}
