package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fastapi-template.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadRawConfig(t *testing.T) {
	t.Run("valid_file", func(t *testing.T) {
		path := writeTempConfig(t, "template_type: api_only\nbackend: beanie\ninclude_docker: false\n")

		raw, err := LoadRawConfig(path)
		if err != nil {
			t.Fatalf("LoadRawConfig error: %v", err)
		}
		if raw[KeyTemplateType] != "api_only" {
			t.Errorf("template_type = %v, want api_only", raw[KeyTemplateType])
		}
		if raw[KeyIncludeDocker] != false {
			t.Errorf("include_docker = %v, want false", raw[KeyIncludeDocker])
		}
	})

	t.Run("round_trip_through_resolve", func(t *testing.T) {
		path := writeTempConfig(t, "backend: beanie\ninclude_auth: true\ninclude_database: false\n")

		raw, err := LoadRawConfig(path)
		if err != nil {
			t.Fatalf("LoadRawConfig error: %v", err)
		}
		cfg, err := Resolve(raw)
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if cfg.Backend != BackendBeanie {
			t.Errorf("Backend = %q, want beanie", cfg.Backend)
		}
		if !cfg.IncludeDatabase {
			t.Error("IncludeDatabase = false, want true (forced by auth)")
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadRawConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigFileUnreadable) {
			t.Errorf("error = %v, want ErrConfigFileUnreadable", err)
		}
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		path := writeTempConfig(t, "backend: [unclosed\n")
		_, err := LoadRawConfig(path)
		if !errors.Is(err, ErrInvalidYAML) {
			t.Errorf("error = %v, want ErrInvalidYAML", err)
		}
	})

	t.Run("unrecognized_keys_preserved", func(t *testing.T) {
		path := writeTempConfig(t, "backend: sqlalchemy\nfuture_option: 42\n")
		raw, err := LoadRawConfig(path)
		if err != nil {
			t.Fatalf("LoadRawConfig error: %v", err)
		}
		if _, ok := raw["future_option"]; !ok {
			t.Error("unrecognized key dropped, want preserved for Resolve to ignore")
		}
	})
}
