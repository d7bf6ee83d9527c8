// Package cli wires the cobra command tree for the fastapi-template binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sohail342/fastapi-template/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "fastapi-template",
	Short: "Generate production-ready FastAPI project skeletons",
	Long: `fastapi-template materializes a complete FastAPI project from a declarative
configuration: template flavor (minimal, api_only, fullstack), persistence
backend (SQLAlchemy or Beanie), and feature flags for auth, database, Docker,
and tests.

Every generated file is the final, backend-specific artifact — no conditional
logic or template markers survive into the output.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("fastapi-template %s\n", version.GetVersion()))
	rootCmd.AddCommand(newCmd)
}
