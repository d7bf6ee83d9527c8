package ui

import (
	"strings"
	"testing"

	"github.com/Sohail342/fastapi-template/internal/config"
	"github.com/Sohail342/fastapi-template/internal/core/project"
)

func TestRenderFileList(t *testing.T) {
	theme := NewTheme(true)
	res := &project.Result{
		TargetDir: "/tmp/demo",
		Files:     []string{"README.md", "app/main.py", "requirements.txt"},
	}

	out := RenderFileList(theme, res)
	for _, path := range res.Files {
		if !strings.Contains(out, path) {
			t.Errorf("output missing %q:\n%s", path, out)
		}
	}
	if !strings.Contains(out, "3 files") {
		t.Errorf("output missing file count:\n%s", out)
	}

	res.DryRun = true
	out = RenderFileList(theme, res)
	if !strings.Contains(out, "would be generated") {
		t.Errorf("dry-run output not marked:\n%s", out)
	}
}

func TestRenderNextSteps(t *testing.T) {
	theme := NewTheme(true)

	t.Run("sqlalchemy_fullstack_mentions_migrations", func(t *testing.T) {
		res := &project.Result{TargetDir: "demo", Config: config.NewDefaultResolvedConfig()}
		out := RenderNextSteps(theme, res)
		if !strings.Contains(out, "alembic") {
			t.Errorf("next steps missing migration hint:\n%s", out)
		}
		if !strings.Contains(out, "docker compose") {
			t.Errorf("next steps missing docker hint:\n%s", out)
		}
	})

	t.Run("beanie_omits_migrations", func(t *testing.T) {
		cfg := config.NewDefaultResolvedConfig()
		cfg.Backend = config.BackendBeanie
		res := &project.Result{TargetDir: "demo", Config: cfg}
		out := RenderNextSteps(theme, res)
		if strings.Contains(out, "alembic") {
			t.Errorf("next steps mention migrations for document store:\n%s", out)
		}
	})

	t.Run("no_docker_no_compose_hint", func(t *testing.T) {
		cfg := config.NewDefaultResolvedConfig()
		cfg.IncludeDocker = false
		res := &project.Result{TargetDir: "demo", Config: cfg}
		out := RenderNextSteps(theme, res)
		if strings.Contains(out, "docker compose") {
			t.Errorf("next steps mention docker with docker off:\n%s", out)
		}
	})
}

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless not honored")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive not honored")
	}
}
