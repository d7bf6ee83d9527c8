package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Sohail342/fastapi-template/internal/config"
)

// Run executes the wizard and returns the collected result. Defaults match
// the resolver's defaulting policy, so accepting every prompt yields the
// same project as running with no flags at all.
func Run(defaultProjectName string) (*Result, error) {
	result := &Result{
		ProjectName:     defaultProjectName,
		TemplateType:    string(config.DefaultTemplateType),
		Backend:         string(config.DefaultBackend),
		IncludeAuth:     config.DefaultIncludeAuth,
		IncludeDatabase: config.DefaultIncludeDatabase,
		IncludeDocker:   config.DefaultIncludeDocker,
		IncludeTests:    config.DefaultIncludeTests,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used for the generated README, compose services, and database name.").
				Value(&result.ProjectName),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Template type").
				Description("Overall project shape.").
				Options(
					huh.NewOption("Fullstack (API + server-rendered pages)", string(config.TypeFullstack)),
					huh.NewOption("API only", string(config.TypeAPIOnly)),
					huh.NewOption("Minimal (single module)", string(config.TypeMinimal)),
				).
				Value(&result.TemplateType),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Persistence backend").
				Description("Relational via SQLAlchemy, or document store via Beanie.").
				Options(
					huh.NewOption("SQLAlchemy (PostgreSQL)", string(config.BackendSQLAlchemy)),
					huh.NewOption("Beanie (MongoDB)", string(config.BackendBeanie)),
				).
				Value(&result.Backend),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include authentication?").
				Description("User registration and login endpoints. Implies a database.").
				Value(&result.IncludeAuth),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include database layer?").
				Value(&result.IncludeDatabase),
		).WithHideFunc(func() bool {
			// Auth forces the database; asking would be misleading.
			return result.IncludeAuth
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include Docker setup?").
				Description("docker-compose.yml with an application and database service.").
				Value(&result.IncludeDocker),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include test suite?").
				Value(&result.IncludeTests),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	return result, nil
}
