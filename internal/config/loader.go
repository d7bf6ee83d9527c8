package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRawConfig reads a YAML file containing RawConfig keys and returns the
// decoded mapping. The file is optional sugar for non-interactive use; keys
// it does not recognize are preserved so Resolve can ignore them uniformly.
//
// Enum and type validation is deliberately left to Resolve — the loader's
// only job is syntax.
func LoadRawConfig(path string) (RawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigFileUnreadable, path, err)
	}

	raw := RawConfig{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	for key := range raw {
		switch key {
		case KeyTemplateType, KeyBackend, KeyIncludeAuth, KeyIncludeDatabase, KeyIncludeDocker, KeyIncludeTests:
		default:
			slog.Warn("ignoring unrecognized config key", "key", key, "path", path)
		}
	}

	return raw, nil
}
