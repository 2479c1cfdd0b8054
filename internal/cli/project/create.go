package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
	projectservice "github.com/thenoetrevino/tablero/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project. Every project starts with the columns To Do, In Progress and Done.

Examples:
  # Simple project (human-readable output)
  tablero project create --name="Backend API"

  # JSON output for agents
  tablero project create --name="Backend API" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(tablero project create --name="Backend API" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Project name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("description", "", "Project description")
	cli.AddOutputFlags(cmd)

	return cmd
}

type created struct {
	*models.Project
}

func (c created) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Project '%s' created successfully (ID: %d)\n", c.Name, c.ID)
	return err
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	project, err := c.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	return created{project}, nil
}
