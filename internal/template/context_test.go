package template

import (
	"strings"
	"testing"

	"github.com/Sohail342/fastapi-template/internal/config"
)

func TestNewContext(t *testing.T) {
	t.Run("sqlalchemy_values", func(t *testing.T) {
		ctx := NewContext(config.NewDefaultResolvedConfig(), WithProjectName("order-api"))

		wants := map[string]string{
			"PROJECT_NAME":  "order-api",
			"PROJECT_TITLE": "Order Api",
			"BACKEND":       "sqlalchemy",
			"TEMPLATE_TYPE": "fullstack",
			"DATABASE_NAME": "order_api",
			"DB_IMAGE":      "postgres:16-alpine",
			"DB_PORT":       "5432",
		}
		for token, want := range wants {
			got, ok := ctx.Value(token)
			if !ok {
				t.Fatalf("token %q missing", token)
			}
			if got != want {
				t.Errorf("%s = %q, want %q", token, got, want)
			}
		}

		url, _ := ctx.Value("DATABASE_URL")
		if !strings.HasPrefix(url, "postgresql+asyncpg://") {
			t.Errorf("DATABASE_URL = %q, want postgres scheme", url)
		}
		pins, _ := ctx.Value("DB_DEPENDENCY_PINS")
		if !strings.Contains(pins, "sqlalchemy==") || !strings.Contains(pins, "alembic==") {
			t.Errorf("DB_DEPENDENCY_PINS = %q, want sqlalchemy and alembic pins", pins)
		}
	})

	t.Run("beanie_values", func(t *testing.T) {
		cfg := config.NewDefaultResolvedConfig()
		cfg.Backend = config.BackendBeanie
		ctx := NewContext(cfg)

		url, _ := ctx.Value("DATABASE_URL")
		if !strings.HasPrefix(url, "mongodb://") {
			t.Errorf("DATABASE_URL = %q, want mongodb scheme", url)
		}
		pins, _ := ctx.Value("DB_DEPENDENCY_PINS")
		if !strings.Contains(pins, "beanie==") || !strings.Contains(pins, "motor==") {
			t.Errorf("DB_DEPENDENCY_PINS = %q, want beanie and motor pins", pins)
		}
		if strings.Contains(pins, "alembic") {
			t.Errorf("DB_DEPENDENCY_PINS = %q, carries relational pins", pins)
		}
	})

	t.Run("auth_pins_follow_flag", func(t *testing.T) {
		cfg := config.NewDefaultResolvedConfig()
		pins, _ := NewContext(cfg).Value("AUTH_DEPENDENCY_PINS")
		if !strings.Contains(pins, "passlib") {
			t.Errorf("AUTH_DEPENDENCY_PINS = %q, want passlib pin", pins)
		}

		cfg.IncludeAuth = false
		pins, _ = NewContext(cfg).Value("AUTH_DEPENDENCY_PINS")
		if pins != "" {
			t.Errorf("AUTH_DEPENDENCY_PINS = %q, want empty with auth off", pins)
		}
	})

	t.Run("default_project_name", func(t *testing.T) {
		ctx := NewContext(config.NewDefaultResolvedConfig())
		name, _ := ctx.Value("PROJECT_NAME")
		if name != DefaultProjectName {
			t.Errorf("PROJECT_NAME = %q, want %q", name, DefaultProjectName)
		}
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Shop", "my-shop"},
		{"order_api", "order-api"},
		{"  Weird -- Name!! ", "weird-name"},
		{"already-a-slug", "already-a-slug"},
		{"///", DefaultProjectName},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := slugify(tt.in); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
