package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Sohail342/fastapi-template/internal/config"
	"github.com/Sohail342/fastapi-template/internal/template"
)

// Options configures a single generation run.
type Options struct {
	TargetDir   string // Directory the project is materialized into.
	ProjectName string // Defaults to the base name of TargetDir.
	DryRun      bool   // Resolve, select, and render without writing.
	Force       bool   // Allow generating into a non-empty directory.
}

// Result summarizes a completed generation run.
type Result struct {
	TargetDir string
	Config    config.ResolvedConfig
	Files     []string // Output-relative paths, sorted.
	DryRun    bool
}

// Generator runs the full resolve, select, render, write pipeline.
type Generator interface {
	// Generate materializes a project from the raw configuration. On any
	// component failure it stops immediately and surfaces the first error;
	// writes already issued are not rolled back.
	Generate(ctx context.Context, raw config.RawConfig, opts Options) (*Result, error)
}

// generator is the concrete implementation of Generator.
type generator struct {
	templates fs.FS      // Template tree; go:embed in production, MapFS in tests.
	fsys      FileSystem // Write-side collaborator.
	logger    *slog.Logger
}

// NewGenerator creates a Generator reading templates from fsys and writing
// through out.
func NewGenerator(templates fs.FS, out FileSystem, logger *slog.Logger) Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &generator{templates: templates, fsys: out, logger: logger}
}

// Generate walks the forward path: config resolved, catalog loaded, files
// selected, all rendered, written. Each step calls exactly one component and
// any error is final.
func (g *generator) Generate(ctx context.Context, raw config.RawConfig, opts Options) (*Result, error) {
	if opts.TargetDir == "" && !opts.DryRun {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidTarget)
	}
	opts.TargetDir = filepath.Clean(opts.TargetDir)
	if opts.ProjectName == "" {
		opts.ProjectName = filepath.Base(opts.TargetDir)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(raw)
	if err != nil {
		return nil, err
	}
	g.logger.Info("configuration resolved",
		"template_type", cfg.TemplateType,
		"backend", cfg.Backend,
		"auth", cfg.IncludeAuth,
		"database", cfg.IncludeDatabase,
		"docker", cfg.IncludeDocker,
		"tests", cfg.IncludeTests,
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	catalog, err := template.LoadCatalog(g.templates)
	if err != nil {
		return nil, err
	}
	g.logger.Info("template catalog loaded", "entries", catalog.Len())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selection, err := template.Select(cfg, catalog)
	if err != nil {
		return nil, err
	}
	g.logger.Info("files selected", "count", selection.Len())

	tmplCtx := template.NewContext(cfg, template.WithProjectName(opts.ProjectName))

	paths := selection.Paths()
	rendered := make([]template.Rendered, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		file, _ := selection.File(path)
		out, err := template.Render(file, tmplCtx)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, out)
	}

	result := &Result{
		TargetDir: opts.TargetDir,
		Config:    cfg,
		Files:     paths,
		DryRun:    opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	if !opts.Force {
		if err := ensureEmptyTarget(opts.TargetDir); err != nil {
			return nil, err
		}
	}
	if err := g.fsys.MkdirAll(opts.TargetDir, 0o755); err != nil {
		return nil, err
	}
	for _, out := range rendered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dest := filepath.Join(opts.TargetDir, filepath.FromSlash(out.Path))
		if err := g.fsys.WriteFile(dest, out.Content, filePerm(out.Path)); err != nil {
			return nil, fmt.Errorf("write %q: %w", out.Path, err)
		}
		g.logger.Debug("file written", "path", out.Path)
	}

	g.logger.Info("project generated", "target", opts.TargetDir, "files", len(rendered))
	return result, nil
}

// filePerm picks output permissions; shell scripts keep the executable bit.
func filePerm(path string) fs.FileMode {
	if filepath.Ext(path) == ".sh" {
		return 0o755
	}
	return 0o644
}

// ensureEmptyTarget rejects a target directory that already has entries.
func ensureEmptyTarget(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidTarget, dir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s (use --force to override)", ErrTargetExists, dir)
	}
	return nil
}
