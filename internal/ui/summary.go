package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Sohail342/fastapi-template/internal/config"
	"github.com/Sohail342/fastapi-template/internal/core/project"
)

// RenderFileList formats the generated (or dry-run) file paths.
func RenderFileList(theme *Theme, res *project.Result) string {
	var b strings.Builder
	if res.DryRun {
		b.WriteString(theme.Title.Render("Files that would be generated") + "\n")
	} else {
		b.WriteString(theme.Title.Render("Generated files") + "\n")
	}
	for _, path := range res.Files {
		b.WriteString("  " + theme.Path.Render(path) + "\n")
	}
	b.WriteString(theme.Muted.Render(fmt.Sprintf("%d files", len(res.Files))) + "\n")
	return b.String()
}

// RenderNextSteps renders the post-generation instructions as terminal
// markdown. Falls back to the raw markdown when glamour cannot build a
// renderer (e.g. unusual TERM).
func RenderNextSteps(theme *Theme, res *project.Result) string {
	md := nextStepsMarkdown(res)
	if theme.NoColor {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func nextStepsMarkdown(res *project.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Next steps\n\n")
	fmt.Fprintf(&b, "```bash\ncd %s\npython -m venv .venv && source .venv/bin/activate\npip install -r requirements.txt\n", res.TargetDir)
	if res.Config.IncludeDocker {
		b.WriteString("docker compose up -d db\n")
	}
	if res.Config.Backend == config.BackendSQLAlchemy && res.Config.IncludeDatabase && res.Config.TemplateType != config.TypeMinimal {
		b.WriteString("alembic revision --autogenerate -m 'initial' && alembic upgrade head\n")
	}
	b.WriteString("uvicorn app.main:app --reload\n```\n")
	if res.Config.IncludeTests {
		b.WriteString("\nRun the test suite with `pytest`.\n")
	}
	return b.String()
}
