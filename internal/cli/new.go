package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sohail342/fastapi-template/internal/cli/wizard"
	"github.com/Sohail342/fastapi-template/internal/config"
	"github.com/Sohail342/fastapi-template/internal/core/project"
	"github.com/Sohail342/fastapi-template/internal/ui"
	"github.com/Sohail342/fastapi-template/templates"
)

var newFlags struct {
	templateType   string
	backend        string
	auth           bool
	database       bool
	docker         bool
	tests          bool
	configFile     string
	projectName    string
	dryRun         bool
	force          bool
	nonInteractive bool
	noColor        bool
	verbose        bool
}

var newCmd = &cobra.Command{
	Use:   "new [directory]",
	Short: "Generate a new FastAPI project",
	Long: `Generate a new FastAPI project into the given directory.

Without flags or a config file, and when run on a terminal, an interactive
wizard collects the configuration. Flags always override config file values;
both are validated by the same resolver.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	f := newCmd.Flags()
	f.StringVarP(&newFlags.templateType, "template-type", "t", "", "template type: minimal, api_only, fullstack")
	f.StringVarP(&newFlags.backend, "backend", "b", "", "persistence backend: sqlalchemy, beanie")
	f.BoolVar(&newFlags.auth, "auth", config.DefaultIncludeAuth, "include authentication endpoints")
	f.BoolVar(&newFlags.database, "database", config.DefaultIncludeDatabase, "include the database layer")
	f.BoolVar(&newFlags.docker, "docker", config.DefaultIncludeDocker, "include Docker setup")
	f.BoolVar(&newFlags.tests, "tests", config.DefaultIncludeTests, "include the test suite")
	f.StringVarP(&newFlags.configFile, "config", "c", "", "YAML file with generation options")
	f.StringVar(&newFlags.projectName, "name", "", "project name (defaults to the directory base name)")
	f.BoolVar(&newFlags.dryRun, "dry-run", false, "list the files that would be generated without writing")
	f.BoolVar(&newFlags.force, "force", false, "generate into a non-empty directory")
	f.BoolVar(&newFlags.nonInteractive, "non-interactive", false, "never prompt; use flags, config file, and defaults")
	f.BoolVar(&newFlags.noColor, "no-color", false, "disable colored output")
	f.BoolVarP(&newFlags.verbose, "verbose", "v", false, "enable debug logging")
}

func runNew(cmd *cobra.Command, args []string) error {
	setupLogging(newFlags.verbose)
	theme := ui.NewTheme(newFlags.noColor)
	headless := ui.NewHeadlessManager()
	if newFlags.nonInteractive {
		headless.ForceHeadless(true)
	}

	raw := config.RawConfig{}
	if newFlags.configFile != "" {
		loaded, err := config.LoadRawConfig(newFlags.configFile)
		if err != nil {
			return err
		}
		raw = loaded
	}
	applyFlagOverrides(cmd, raw)

	targetDir := ""
	if len(args) == 1 {
		targetDir = args[0]
	}
	projectName := newFlags.projectName

	// The wizard runs only when nothing else pinned the configuration.
	if len(raw) == 0 && !headless.IsHeadless() {
		defaultName := projectName
		if defaultName == "" && targetDir != "" {
			defaultName = filepath.Base(targetDir)
		}
		result, err := wizard.Run(defaultName)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), theme.Muted.Render("Cancelled."))
				return nil
			}
			return err
		}
		raw = result.RawConfig()
		if projectName == "" {
			projectName = result.ProjectName
		}
		if targetDir == "" {
			targetDir = result.ProjectName
		}
	}

	if targetDir == "" && !newFlags.dryRun {
		return fmt.Errorf("target directory required (pass it as an argument or run interactively)")
	}

	generator := project.NewGenerator(templates.FS(), project.NewOSFileSystem(), slog.Default())
	opts := project.Options{
		TargetDir:   targetDir,
		ProjectName: projectName,
		DryRun:      newFlags.dryRun,
		Force:       newFlags.force,
	}

	var spin ui.Spinner
	if !newFlags.dryRun {
		spin = ui.NewSpinner(theme, headless, "Generating project")
		spin.Start()
	}
	res, err := generator.Generate(cmd.Context(), raw, opts)
	if spin != nil {
		if err != nil {
			spin.Stop(false, err.Error())
		} else {
			spin.Stop(true, fmt.Sprintf("Project generated in %s", res.TargetDir))
		}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, ui.RenderFileList(theme, res))
	if !res.DryRun {
		fmt.Fprint(out, ui.RenderNextSteps(theme, res))
	}
	return nil
}

// applyFlagOverrides copies explicitly-set flags into the raw config. Flags
// the user did not touch stay absent so the resolver's defaulting applies.
func applyFlagOverrides(cmd *cobra.Command, raw config.RawConfig) {
	if cmd.Flags().Changed("template-type") {
		raw[config.KeyTemplateType] = newFlags.templateType
	}
	if cmd.Flags().Changed("backend") {
		raw[config.KeyBackend] = newFlags.backend
	}
	if cmd.Flags().Changed("auth") {
		raw[config.KeyIncludeAuth] = newFlags.auth
	}
	if cmd.Flags().Changed("database") {
		raw[config.KeyIncludeDatabase] = newFlags.database
	}
	if cmd.Flags().Changed("docker") {
		raw[config.KeyIncludeDocker] = newFlags.docker
	}
	if cmd.Flags().Changed("tests") {
		raw[config.KeyIncludeTests] = newFlags.tests
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
