package template

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/Sohail342/fastapi-template/internal/config"
)

func TestLoadCatalog(t *testing.T) {
	t.Run("tags_from_tree_position", func(t *testing.T) {
		fsys := fstest.MapFS{
			"common/common/core/README.md":                   &fstest.MapFile{Data: []byte("# {{PROJECT_TITLE}}\n")},
			"common/sqlalchemy/database/app/db/database.py":  &fstest.MapFile{Data: []byte("engine\n")},
			"common/beanie/database/app/db/database.py":      &fstest.MapFile{Data: []byte("client\n")},
			"fullstack/common/core/app/main.py":              &fstest.MapFile{Data: []byte("app\n")},
			"api_only/sqlalchemy/database/alembic/env.py":    &fstest.MapFile{Data: []byte("env\n")},
			"minimal/common/tests/tests/test_main.py":        &fstest.MapFile{Data: []byte("test\n")},
		}

		cat, err := LoadCatalog(fsys)
		if err != nil {
			t.Fatalf("LoadCatalog error: %v", err)
		}
		if cat.Len() != 6 {
			t.Fatalf("Len = %d, want 6", cat.Len())
		}

		bySource := make(map[string]File)
		for _, f := range cat.Files() {
			bySource[f.Source] = f
		}

		readme := bySource["common/common/core/README.md"]
		if readme.Path != "README.md" {
			t.Errorf("README path = %q, want README.md", readme.Path)
		}
		if len(readme.Types) != 0 {
			t.Errorf("README types = %v, want unrestricted", readme.Types)
		}
		if readme.Backend != TagCommon || readme.Feature != FeatureCore {
			t.Errorf("README tags = %q/%q, want common/core", readme.Backend, readme.Feature)
		}

		db := bySource["common/sqlalchemy/database/app/db/database.py"]
		if db.Path != "app/db/database.py" {
			t.Errorf("database.py path = %q", db.Path)
		}
		if db.Backend != "sqlalchemy" || db.Feature != FeatureDatabase {
			t.Errorf("database.py tags = %q/%q, want sqlalchemy/database", db.Backend, db.Feature)
		}

		alembic := bySource["api_only/sqlalchemy/database/alembic/env.py"]
		if len(alembic.Types) != 1 || alembic.Types[0] != config.TypeAPIOnly {
			t.Errorf("alembic types = %v, want [api_only]", alembic.Types)
		}
		if alembic.Path != "alembic/env.py" {
			t.Errorf("alembic path = %q, want alembic/env.py", alembic.Path)
		}
	})

	t.Run("content_preserved", func(t *testing.T) {
		fsys := fstest.MapFS{
			"common/common/core/requirements.txt": &fstest.MapFile{Data: []byte("fastapi==0.111.0\n{{DB_DEPENDENCY_PINS}}\n")},
		}
		cat, err := LoadCatalog(fsys)
		if err != nil {
			t.Fatalf("LoadCatalog error: %v", err)
		}
		got := string(cat.Files()[0].Content)
		if got != "fastapi==0.111.0\n{{DB_DEPENDENCY_PINS}}\n" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("too_few_segments", func(t *testing.T) {
		fsys := fstest.MapFS{
			"common/core/README.md": &fstest.MapFile{Data: []byte("x")},
		}
		_, err := LoadCatalog(fsys)
		if !errors.Is(err, ErrMalformedTemplatePath) {
			t.Errorf("error = %v, want ErrMalformedTemplatePath", err)
		}
	})

	t.Run("unknown_type_tag", func(t *testing.T) {
		fsys := fstest.MapFS{
			"monolith/common/core/README.md": &fstest.MapFile{Data: []byte("x")},
		}
		_, err := LoadCatalog(fsys)
		if !errors.Is(err, ErrMalformedTemplatePath) {
			t.Errorf("error = %v, want ErrMalformedTemplatePath", err)
		}
	})

	t.Run("unknown_backend_tag", func(t *testing.T) {
		fsys := fstest.MapFS{
			"common/django/core/README.md": &fstest.MapFile{Data: []byte("x")},
		}
		_, err := LoadCatalog(fsys)
		if !errors.Is(err, ErrMalformedTemplatePath) {
			t.Errorf("error = %v, want ErrMalformedTemplatePath", err)
		}
	})

	t.Run("unknown_feature_tag", func(t *testing.T) {
		fsys := fstest.MapFS{
			"common/common/metrics/README.md": &fstest.MapFile{Data: []byte("x")},
		}
		_, err := LoadCatalog(fsys)
		if !errors.Is(err, ErrMalformedTemplatePath) {
			t.Errorf("error = %v, want ErrMalformedTemplatePath", err)
		}
	})
}
